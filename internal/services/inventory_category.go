package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/repositories"
)

const inventoryCategoriesSheet = "Categories"

type InventoryCategoryService struct {
	BaseService
	categoryRepo repositories.InventoryCategoryRepositoryInterface
}

func NewInventoryCategoryService(categoryRepo repositories.InventoryCategoryRepositoryInterface, logger *zap.Logger) *InventoryCategoryService {
	return &InventoryCategoryService{
		BaseService:  NewBaseService(logger),
		categoryRepo: categoryRepo,
	}
}

func (s *InventoryCategoryService) GetCategories(ctx context.Context, businessUnitID string) ([]dto.InventoryCategoryDTO, error) {
	if _, err := s.Authorize(ctx, businessUnitID, authz.AssignedOnly); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategoriesWithItemCount(ctx, businessUnitID)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryCategoryDTOs(categories), nil
}

// ExportCategories — тот же список, но xlsx-файлом (название, описание, кол-во позиций).
func (s *InventoryCategoryService) ExportCategories(ctx context.Context, businessUnitID string) (*bytes.Buffer, error) {
	categories, err := s.GetCategories(ctx, businessUnitID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), inventoryCategoriesSheet); err != nil {
		return nil, fmt.Errorf("ошибка переименования листа: %w", err)
	}

	header := []interface{}{"Name", "Description", "Item count"}
	if err := f.SetSheetRow(inventoryCategoriesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("ошибка записи заголовка: %w", err)
	}

	for i, c := range categories {
		description := ""
		if c.Description != nil {
			description = *c.Description
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{c.Name, description, c.ItemCount}
		if err := f.SetSheetRow(inventoryCategoriesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("ошибка записи строки %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации xlsx: %w", err)
	}
	return buf, nil
}
