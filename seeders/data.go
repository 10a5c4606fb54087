package seeders

import (
	"github.com/google/uuid"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/internal/entities"
)

// seedNamespace — id сидов детерминированы, повторный запуск ничего не дублирует.
var seedNamespace = uuid.MustParse("6f1c2a4e-3b7d-4c1e-9a5f-2d8e0b7c4a11")

func seedID(kind, name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name)).String()
}

const (
	buGrandHotel = "Grand Hotel Dushanbe"
	buLakeside   = "Lakeside Resort"
	buCityCafe   = "City Cafe"
)

var rolesData = []authz.RoleName{
	authz.RoleAdmin,
	authz.RoleManager,
	authz.RoleCashier,
	authz.RoleStaff,
}

var businessUnitsData = []struct {
	Name     string
	Location string
}{
	{Name: buGrandHotel, Location: "Dushanbe, Rudaki ave. 22"},
	{Name: buLakeside, Location: "Iskanderkul"},
	{Name: buCityCafe},
}

var demoUsersData = []struct {
	Username string
	Role     authz.RoleName
	Units    []string
}{
	{Username: "manager", Role: authz.RoleManager, Units: []string{buGrandHotel, buLakeside}},
	{Username: "cashier", Role: authz.RoleCashier, Units: []string{buGrandHotel, buCityCafe}},
	{Username: "staff", Role: authz.RoleStaff, Units: []string{buLakeside}},
}

const demoPassword = "Password123!"

var uomsData = []struct {
	Name   string
	Symbol string
}{
	{Name: "Piece", Symbol: "pcs"},
	{Name: "Kilogram", Symbol: "kg"},
	{Name: "Liter", Symbol: "l"},
	{Name: "Bottle", Symbol: "btl"},
	{Name: "Box", Symbol: "box"},
	{Name: "Pack", Symbol: "pack"},
}

var inventoryCategoriesData = []struct {
	Unit        string
	Name        string
	Description string
}{
	{Unit: buGrandHotel, Name: "Linen", Description: "Bed sheets, towels, bathrobes"},
	{Unit: buGrandHotel, Name: "Minibar", Description: "Drinks and snacks for rooms"},
	{Unit: buGrandHotel, Name: "Cleaning supplies"},
	{Unit: buLakeside, Name: "Linen"},
	{Unit: buLakeside, Name: "Kitchen", Description: "Dry goods and produce"},
	{Unit: buCityCafe, Name: "Coffee"},
}

var inventoryItemsData = []struct {
	Unit     string
	Category string
	UoM      string
	Name     string
}{
	{Unit: buGrandHotel, Category: "Linen", UoM: "Piece", Name: "Bath towel"},
	{Unit: buGrandHotel, Category: "Linen", UoM: "Piece", Name: "King size sheet"},
	{Unit: buGrandHotel, Category: "Minibar", UoM: "Bottle", Name: "Mineral water 0.5"},
	{Unit: buGrandHotel, Category: "Minibar", UoM: "Pack", Name: "Almonds"},
	{Unit: buLakeside, Category: "Kitchen", UoM: "Kilogram", Name: "Rice"},
	{Unit: buLakeside, Category: "Kitchen", UoM: "Liter", Name: "Sunflower oil"},
	{Unit: buCityCafe, Category: "Coffee", UoM: "Kilogram", Name: "Arabica beans"},
}

var menuCategoriesData = []struct {
	Unit      string
	Name      string
	SortOrder int
}{
	{Unit: buGrandHotel, Name: "Breakfast", SortOrder: 1},
	{Unit: buGrandHotel, Name: "Mains", SortOrder: 2},
	{Unit: buGrandHotel, Name: "Drinks", SortOrder: 3},
	{Unit: buCityCafe, Name: "Coffee", SortOrder: 1},
	{Unit: buCityCafe, Name: "Desserts", SortOrder: 2},
}

var menuItemsData = []struct {
	Unit        string
	Category    string
	Name        string
	Description string
	Price       string
	IsActive    bool
}{
	{Unit: buGrandHotel, Category: "Breakfast", Name: "Omelette", Description: "Three eggs, herbs", Price: "35.00", IsActive: true},
	{Unit: buGrandHotel, Category: "Breakfast", Name: "Granola", Price: "28.50", IsActive: true},
	{Unit: buGrandHotel, Category: "Mains", Name: "Plov", Description: "Traditional rice with lamb", Price: "60.00", IsActive: true},
	{Unit: buGrandHotel, Category: "Mains", Name: "Kurutob", Price: "55.00", IsActive: false},
	{Unit: buGrandHotel, Category: "Drinks", Name: "Green tea", Price: "10.00", IsActive: true},
	{Unit: buCityCafe, Category: "Coffee", Name: "Cappuccino", Price: "22.00", IsActive: true},
	{Unit: buCityCafe, Category: "Coffee", Name: "Espresso", Price: "15.00", IsActive: true},
	{Unit: buCityCafe, Category: "Desserts", Name: "Napoleon", Price: "25.00", IsActive: true},
}

var accommodationsData = []struct {
	Unit          string
	Name          string
	Description   string
	Capacity      int
	PricePerNight string
	Amenities     []string
	IsActive      bool
}{
	{Unit: buGrandHotel, Name: "Deluxe King", Description: "City view, 40 m2", Capacity: 2, PricePerNight: "1200.00", Amenities: []string{"wifi", "minibar", "air conditioning"}, IsActive: true},
	{Unit: buGrandHotel, Name: "Family Suite", Capacity: 4, PricePerNight: "2100.00", Amenities: []string{"wifi", "kitchenette"}, IsActive: true},
	{Unit: buGrandHotel, Name: "Standard Twin", Capacity: 2, PricePerNight: "800.00", Amenities: []string{"wifi"}, IsActive: false},
	{Unit: buLakeside, Name: "Lake Cabin", Description: "Wooden cabin by the water", Capacity: 3, PricePerNight: "950.00", Amenities: []string{"fireplace", "terrace"}, IsActive: true},
}

var hotelServicesData = []struct {
	Unit        string
	Name        string
	Description string
	Category    string
	Price       string
	IsActive    bool
}{
	{Unit: buGrandHotel, Name: "Airport transfer", Category: "Transport", Price: "150.00", IsActive: true},
	{Unit: buGrandHotel, Name: "City tour", Category: "Excursions", Price: "300.00", IsActive: true},
	{Unit: buGrandHotel, Name: "Massage 60 min", Description: "Classic or aroma", Category: "Spa", Price: "400.00", IsActive: true},
	{Unit: buGrandHotel, Name: "Sauna", Category: "Spa", Price: "250.00", IsActive: true},
	{Unit: buLakeside, Name: "Boat rental", Category: "Excursions", Price: "200.00", IsActive: true},
	{Unit: buLakeside, Name: "Horse riding", Category: "Excursions", Price: "180.00", IsActive: false},
}

var arInvoicesData = []struct {
	Unit     string
	Number   string
	Status   entities.InvoiceStatus
	Total    string
	Payments []string
}{
	{Unit: buGrandHotel, Number: "INV-0001", Status: entities.InvoiceStatusDraft, Total: "1200.00"},
	{Unit: buGrandHotel, Number: "INV-0002", Status: entities.InvoiceStatusOpen, Total: "2400.00"},
	{Unit: buGrandHotel, Number: "INV-0003", Status: entities.InvoiceStatusPartiallyPaid, Total: "3000.00", Payments: []string{"1000.00"}},
	{Unit: buGrandHotel, Number: "INV-0004", Status: entities.InvoiceStatusClosed, Total: "500.00", Payments: []string{"500.00"}},
	{Unit: buLakeside, Number: "INV-0001", Status: entities.InvoiceStatusOpen, Total: "950.00"},
}
