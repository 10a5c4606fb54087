package seeders

import (
	"context"
	"log"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func seedDemoUsers(ctx context.Context, tx pgx.Tx) ([]string, error) {
	log.Println("  - Демо-пользователи...")
	ids := make([]string, 0, len(demoUsersData))
	for _, u := range demoUsersData {
		id, err := upsertUser(ctx, tx, u.Username, demoPassword, u.Role)
		if err != nil {
			return nil, err
		}
		if err := assignUser(ctx, tx, id, u.Units); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedUoMs(ctx context.Context, tx pgx.Tx) error {
	for _, u := range uomsData {
		_, err := tx.Exec(ctx,
			`INSERT INTO uoms (id, name, symbol) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			seedID("uom", u.Name), u.Name, u.Symbol,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedInventory(ctx context.Context, tx pgx.Tx) error {
	for _, c := range inventoryCategoriesData {
		_, err := tx.Exec(ctx,
			`INSERT INTO inventory_categories (id, business_unit_id, name, description) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			seedID("inventory_category", c.Unit+"/"+c.Name), seedID("business_unit", c.Unit), c.Name,
			null.NewString(c.Description, c.Description != ""),
		)
		if err != nil {
			return err
		}
	}

	for _, i := range inventoryItemsData {
		_, err := tx.Exec(ctx,
			`INSERT INTO inventory_items (id, business_unit_id, category_id, uom_id, name) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			seedID("inventory_item", i.Unit+"/"+i.Name), seedID("business_unit", i.Unit),
			seedID("inventory_category", i.Unit+"/"+i.Category), seedID("uom", i.UoM), i.Name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedMenu(ctx context.Context, tx pgx.Tx) error {
	for _, c := range menuCategoriesData {
		_, err := tx.Exec(ctx,
			`INSERT INTO menu_categories (id, business_unit_id, name, sort_order) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET sort_order = EXCLUDED.sort_order`,
			seedID("menu_category", c.Unit+"/"+c.Name), seedID("business_unit", c.Unit), c.Name, c.SortOrder,
		)
		if err != nil {
			return err
		}
	}

	for _, m := range menuItemsData {
		_, err := tx.Exec(ctx,
			`INSERT INTO menu_items (id, business_unit_id, category_id, name, description, price, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET price = EXCLUDED.price, is_active = EXCLUDED.is_active`,
			seedID("menu_item", m.Unit+"/"+m.Name), seedID("business_unit", m.Unit),
			seedID("menu_category", m.Unit+"/"+m.Category), m.Name,
			null.NewString(m.Description, m.Description != ""), decimal.RequireFromString(m.Price), m.IsActive,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, tx pgx.Tx) error {
	for _, a := range accommodationsData {
		_, err := tx.Exec(ctx,
			`INSERT INTO accommodations (id, business_unit_id, name, description, capacity, price_per_night, amenities, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET price_per_night = EXCLUDED.price_per_night, amenities = EXCLUDED.amenities, is_active = EXCLUDED.is_active`,
			seedID("accommodation", a.Unit+"/"+a.Name), seedID("business_unit", a.Unit), a.Name,
			null.NewString(a.Description, a.Description != ""), a.Capacity,
			decimal.RequireFromString(a.PricePerNight), a.Amenities, a.IsActive,
		)
		if err != nil {
			return err
		}
	}

	for _, s := range hotelServicesData {
		_, err := tx.Exec(ctx,
			`INSERT INTO hotel_services (id, business_unit_id, name, description, category, price, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET price = EXCLUDED.price, is_active = EXCLUDED.is_active`,
			seedID("hotel_service", s.Unit+"/"+s.Name), seedID("business_unit", s.Unit), s.Name,
			null.NewString(s.Description, s.Description != ""), s.Category,
			decimal.RequireFromString(s.Price), s.IsActive,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedInvoices(ctx context.Context, tx pgx.Tx) error {
	for _, inv := range arInvoicesData {
		invoiceID := seedID("ar_invoice", inv.Unit+"/"+inv.Number)
		_, err := tx.Exec(ctx,
			`INSERT INTO ar_invoices (id, business_unit_id, invoice_number, status, total_amount)
			VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			invoiceID, seedID("business_unit", inv.Unit), inv.Number, string(inv.Status),
			decimal.RequireFromString(inv.Total),
		)
		if err != nil {
			return err
		}

		for n, amount := range inv.Payments {
			_, err := tx.Exec(ctx,
				`INSERT INTO ar_payment_applications (id, invoice_id, amount) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
				seedID("ar_payment", invoiceID+"/"+strconv.Itoa(n)), invoiceID, decimal.RequireFromString(amount),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
