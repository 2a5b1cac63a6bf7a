package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/models"
)

func orderProperties(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

// CreateDataType inserts a new data type. Names are unique.
func (s *Store) CreateDataType(ctx context.Context, name, description string) (*models.DataType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: data type name is required", ErrInvalidInput)
	}

	dataType := models.DataType{Name: name, Description: strings.TrimSpace(description)}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.DataType{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("data type %q: %w", name, ErrDuplicate)
		}
		return tx.Create(&dataType).Error
	})
	if err != nil {
		return nil, err
	}

	dataType.Properties = []models.Property{}
	return &dataType, nil
}

// ListDataTypes returns every data type with its properties.
func (s *Store) ListDataTypes(ctx context.Context) ([]models.DataType, error) {
	var dataTypes []models.DataType
	if err := s.db.WithContext(ctx).Preload("Properties", orderProperties).Order("id asc").Find(&dataTypes).Error; err != nil {
		return nil, fmt.Errorf("list data types: %w", err)
	}
	return dataTypes, nil
}

// GetDataType loads a data type and its properties by public id.
func (s *Store) GetDataType(ctx context.Context, publicID string) (*models.DataType, error) {
	var dataType models.DataType
	err := s.db.WithContext(ctx).
		Preload("Properties", orderProperties).
		Where("public_id = ?", publicID).
		First(&dataType).Error
	if err != nil {
		return nil, notFound(err, "data type", publicID)
	}
	return &dataType, nil
}

// CreateProperty adds a typed property to a data type. Property names are
// unique within their data type.
func (s *Store) CreateProperty(ctx context.Context, dataTypeID, name, propertyType string) (*models.Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: property name is required", ErrInvalidInput)
	}
	pt, err := flashcards.ParsePropertyType(propertyType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var property models.Property
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dataType models.DataType
		if err := tx.Where("public_id = ?", dataTypeID).First(&dataType).Error; err != nil {
			return notFound(err, "data type", dataTypeID)
		}

		var existing models.Property
		err := tx.Where("data_type_id = ? AND name = ?", dataType.ID, name).First(&existing).Error
		if err == nil {
			return fmt.Errorf("property %q on %q: %w", name, dataType.Name, ErrDuplicate)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		property = models.Property{DataTypeID: dataType.ID, Name: name, Type: pt}
		return tx.Create(&property).Error
	})
	if err != nil {
		return nil, err
	}
	return &property, nil
}
