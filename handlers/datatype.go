package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GET /api/datatypes
func (h *DBHandler) ListDataTypes(w http.ResponseWriter, r *http.Request) {
	dataTypes, err := h.Store.ListDataTypes(r.Context())
	if err != nil {
		h.fail(w, r, "ListDataTypes", err)
		return
	}
	writeJSON(w, http.StatusOK, dataTypes)
}

// POST /api/datatypes
func (h *DBHandler) CreateDataType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dataType, err := h.Store.CreateDataType(r.Context(), req.Name, req.Description)
	if err != nil {
		h.fail(w, r, "CreateDataType", err)
		return
	}

	h.Logger.Info("CreateDataType: created data type",
		zap.String("type_id", dataType.PublicID), zap.String("name", dataType.Name))
	writeJSON(w, http.StatusCreated, dataType)
}

// GET /api/datatypes/{typeID}
func (h *DBHandler) GetDataType(w http.ResponseWriter, r *http.Request) {
	dataType, err := h.Store.GetDataType(r.Context(), r.PathValue("typeID"))
	if err != nil {
		h.fail(w, r, "GetDataType", err)
		return
	}
	writeJSON(w, http.StatusOK, dataType)
}

// POST /api/datatypes/{typeID}/properties
func (h *DBHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("typeID")

	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.Store.CreateProperty(r.Context(), typeID, req.Name, req.Type)
	if err != nil {
		h.fail(w, r, "CreateProperty", err)
		return
	}

	h.Logger.Info("CreateProperty: created property",
		zap.String("type_id", typeID), zap.String("property_id", property.PublicID),
		zap.String("property_type", string(property.Type)))
	writeJSON(w, http.StatusCreated, property)
}
