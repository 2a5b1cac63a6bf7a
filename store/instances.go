package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/models"
)

// InstanceView is an instance joined with its data type and the values that
// have been assigned so far, in property order.
type InstanceView struct {
	Instance models.Instance
	DataType models.DataType
	Values   []models.PropertyValue
}

// Resolved converts the view into the generator's input.
func (v *InstanceView) Resolved() []flashcards.PropertyValue {
	out := make([]flashcards.PropertyValue, 0, len(v.Values))
	for _, pv := range v.Values {
		out = append(out, flashcards.PropertyValue{
			PropertyID: pv.PropertyID,
			Name:       pv.Property.Name,
			Type:       pv.Property.Type,
			Value:      pv.Value,
		})
	}
	return out
}

// CreateInstance adds a named instance to a data type.
func (s *Store) CreateInstance(ctx context.Context, dataTypeID, name string) (*models.Instance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: instance name is required", ErrInvalidInput)
	}

	var dataType models.DataType
	db := s.db.WithContext(ctx)
	if err := db.Where("public_id = ?", dataTypeID).First(&dataType).Error; err != nil {
		return nil, notFound(err, "data type", dataTypeID)
	}

	instance := models.Instance{DataTypeID: dataType.ID, Name: name}
	if err := db.Create(&instance).Error; err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	return &instance, nil
}

// ListInstances returns the instances of a data type.
func (s *Store) ListInstances(ctx context.Context, dataTypeID string) ([]models.Instance, error) {
	var dataType models.DataType
	db := s.db.WithContext(ctx)
	if err := db.Where("public_id = ?", dataTypeID).First(&dataType).Error; err != nil {
		return nil, notFound(err, "data type", dataTypeID)
	}

	var instances []models.Instance
	if err := db.Where("data_type_id = ?", dataType.ID).Order("id asc").Find(&instances).Error; err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	return instances, nil
}

// GetInstanceView resolves an instance and its property values.
func (s *Store) GetInstanceView(ctx context.Context, instanceID string) (*InstanceView, error) {
	return loadInstanceView(s.db.WithContext(ctx), instanceID)
}

func loadInstanceView(db *gorm.DB, instanceID string) (*InstanceView, error) {
	var instance models.Instance
	err := db.Preload("DataType.Properties", orderProperties).
		Where("public_id = ?", instanceID).
		First(&instance).Error
	if err != nil {
		return nil, notFound(err, "instance", instanceID)
	}

	var values []models.PropertyValue
	err = db.Preload("Property").
		Where("instance_id = ?", instance.ID).
		Order("property_id asc").
		Find(&values).Error
	if err != nil {
		return nil, fmt.Errorf("load values for instance %q: %w", instanceID, err)
	}

	return &InstanceView{Instance: instance, DataType: instance.DataType, Values: values}, nil
}

// SetPropertyValue assigns value to one property of an instance, replacing
// any earlier value. The value is stored as text whatever the property type.
func (s *Store) SetPropertyValue(ctx context.Context, instanceID, propertyID, value string) (*models.PropertyValue, error) {
	db := s.db.WithContext(ctx)

	var instance models.Instance
	if err := db.Where("public_id = ?", instanceID).First(&instance).Error; err != nil {
		return nil, notFound(err, "instance", instanceID)
	}

	var property models.Property
	if err := db.Where("public_id = ?", propertyID).First(&property).Error; err != nil {
		return nil, notFound(err, "property", propertyID)
	}
	if property.DataTypeID != instance.DataTypeID {
		return nil, fmt.Errorf("property %q: %w", propertyID, ErrPropertyMismatch)
	}

	pv := models.PropertyValue{InstanceID: instance.ID, PropertyID: property.ID, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "instance_id"}, {Name: "property_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pv).Error
	if err != nil {
		return nil, fmt.Errorf("set value of %q on %q: %w", property.Name, instance.Name, err)
	}

	pv.Property = property
	return &pv, nil
}
