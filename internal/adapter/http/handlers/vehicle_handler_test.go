package handlers

import (
	"context"
	"net/http"
	"testing"

	"carwash/internal/adapter/http/handlers/mocks"
	"carwash/internal/domain/entities"
	"carwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

func newVehicleRouter(t *testing.T) (*gin.Engine, *mocks.MockIVehicleUseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIVehicleUseCase(gomock.NewController(t))
	h := NewVehicleHandler(uc)

	r := gin.New()
	r.GET("/Vehicle", h.List)
	r.GET("/Vehicle/search", h.Search)
	r.GET("/Vehicle/:id", h.GetByID)
	r.POST("/Vehicle", h.Create)
	r.PUT("/Vehicle/:id", h.Update)
	r.DELETE("/Vehicle/:id", h.Delete)
	return r, uc
}

func TestVehicleHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newVehicleRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.LastServiceDate == nil || !v.HasNanoCeramicTreatment {
					t.Fatalf("unexpected vehicle %+v", v)
				}
				return v, nil
			},
		)

		w := serve(r, http.MethodPost, "/Vehicle",
			`{"license_plate":"XYZ789","brand":"Honda","model":"Civic","traction":"FWD","color":"Red","last_service_date":"2024-12-01","has_nano_ceramic_treatment":true,"customer_id":"987654321"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if gjson.Get(w.Body.String(), "license_plate").String() != "XYZ789" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		r, uc := newVehicleRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, &usecase.ValidationError{
			Messages: []string{"The selected customer does not exist."},
		})

		w := serve(r, http.MethodPost, "/Vehicle", `{"license_plate":"XYZ789"}`)
		if w.Code != http.StatusBadRequest || gjson.Get(w.Body.String(), "errors.0").String() != "The selected customer does not exist." {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestVehicleHandler_GetByID(t *testing.T) {
	r, uc := newVehicleRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "NOPE").Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

	w := serve(r, http.MethodGet, "/Vehicle/NOPE", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if gjson.Get(w.Body.String(), "code").String() != "VEHICLE_NOT_FOUND" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestVehicleHandler_SearchAndDelete(t *testing.T) {
	r, uc := newVehicleRouter(t)
	uc.EXPECT().Search(gomock.Any(), "toyota").Return([]entities.Vehicle{{LicensePlate: "ABC123", Brand: "Toyota"}}, nil)
	uc.EXPECT().Delete(gomock.Any(), "ABC123").Return(nil)

	w := serve(r, http.MethodGet, "/Vehicle/search?searchTerm=toyota", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "0.brand").String() != "Toyota" {
		t.Fatalf("unexpected search response %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodDelete, "/Vehicle/ABC123", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
