package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/store"
)

type valueResponse struct {
	PropertyID string                  `json:"property_id"`
	Name       string                  `json:"name"`
	Type       flashcards.PropertyType `json:"type"`
	Value      string                  `json:"value"`
}

type dataTypeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type instanceResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	DataType  dataTypeRef     `json:"data_type"`
	Values    []valueResponse `json:"values"`
	CreatedAt time.Time       `json:"created_at"`
}

func newInstanceResponse(view *store.InstanceView) instanceResponse {
	values := make([]valueResponse, 0, len(view.Values))
	for _, pv := range view.Values {
		values = append(values, valueResponse{
			PropertyID: pv.Property.PublicID,
			Name:       pv.Property.Name,
			Type:       pv.Property.Type,
			Value:      pv.Value,
		})
	}
	return instanceResponse{
		ID:        view.Instance.PublicID,
		Name:      view.Instance.Name,
		DataType:  dataTypeRef{ID: view.DataType.PublicID, Name: view.DataType.Name},
		Values:    values,
		CreatedAt: view.Instance.CreatedAt,
	}
}

// GET /api/datatypes/{typeID}/instances
func (h *DBHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	instances, err := h.Store.ListInstances(r.Context(), r.PathValue("typeID"))
	if err != nil {
		h.fail(w, r, "ListInstances", err)
		return
	}
	writeJSON(w, http.StatusOK, instances)
}

// POST /api/datatypes/{typeID}/instances
func (h *DBHandler) CreateInstance(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("typeID")

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	instance, err := h.Store.CreateInstance(r.Context(), typeID, req.Name)
	if err != nil {
		h.fail(w, r, "CreateInstance", err)
		return
	}

	h.Logger.Info("CreateInstance: created instance",
		zap.String("type_id", typeID), zap.String("instance_id", instance.PublicID))
	writeJSON(w, http.StatusCreated, instance)
}

// GET /api/instances/{instanceID}
func (h *DBHandler) GetInstance(w http.ResponseWriter, r *http.Request) {
	view, err := h.Store.GetInstanceView(r.Context(), r.PathValue("instanceID"))
	if err != nil {
		h.fail(w, r, "GetInstance", err)
		return
	}
	writeJSON(w, http.StatusOK, newInstanceResponse(view))
}

// PUT /api/instances/{instanceID}/values/{propertyID}
func (h *DBHandler) SetPropertyValue(w http.ResponseWriter, r *http.Request) {
	instanceID := r.PathValue("instanceID")

	var req struct {
		Value *string `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}

	pv, err := h.Store.SetPropertyValue(r.Context(), instanceID, r.PathValue("propertyID"), *req.Value)
	if err != nil {
		h.fail(w, r, "SetPropertyValue", err)
		return
	}

	writeJSON(w, http.StatusOK, valueResponse{
		PropertyID: pv.Property.PublicID,
		Name:       pv.Property.Name,
		Type:       pv.Property.Type,
		Value:      pv.Value,
	})
}
