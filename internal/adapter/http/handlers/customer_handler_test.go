package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carwash/internal/adapter/http/handlers/mocks"
	"carwash/internal/domain/entities"
	"carwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

func newCustomerRouter(t *testing.T) (*gin.Engine, *mocks.MockICustomerUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	r := gin.New()
	r.GET("/Customer", h.List)
	r.GET("/Customer/search", h.Search)
	r.GET("/Customer/:id", h.GetByID)
	r.POST("/Customer", h.Create)
	r.PUT("/Customer/:id", h.Update)
	r.DELETE("/Customer/:id", h.Delete)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerHandler_List(t *testing.T) {
	t.Run("empty list is 200", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := serve(r, http.MethodGet, "/Customer", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !gjson.Get(w.Body.String(), "@this").IsArray() {
			t.Fatalf("expected JSON array, got %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		w := serve(r, http.MethodGet, "/Customer", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if gjson.Get(w.Body.String(), "error").String() != "boom" {
			t.Fatalf("expected underlying error, got %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_Search(t *testing.T) {
	r, uc := newCustomerRouter(t)
	uc.EXPECT().Search(gomock.Any(), "san").Return([]entities.Customer{{IDNumber: "1", Province: "San José"}}, nil)

	w := serve(r, http.MethodGet, "/Customer/search?searchTerm=san", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gjson.Get(w.Body.String(), "0.province").String() != "San José" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestCustomerHandler_GetByID(t *testing.T) {
	r, uc := newCustomerRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

	w := serve(r, http.MethodGet, "/Customer/404", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := gjson.Get(w.Body.String(), "message").String(); got != "Customer with ID '404' not found" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCustomerRouter(t)

		w := serve(r, http.MethodPost, "/Customer", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation errors are listed", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, &usecase.ValidationError{
			Messages: []string{"Full Name is required.", "Phone is required."},
		})

		w := serve(r, http.MethodPost, "/Customer", `{"id_number":"1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := w.Body.String()
		if gjson.Get(body, "errors.#").Int() != 2 || gjson.Get(body, "errors.1").String() != "Phone is required." {
			t.Fatalf("unexpected body %s", body)
		}
		if gjson.Get(body, "code").String() != "VALIDATION_ERROR" {
			t.Fatalf("unexpected code in %s", body)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrCustomerAlreadyExists)

		w := serve(r, http.MethodPost, "/Customer", `{"id_number":"1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.WashPreference != entities.WashPreferenceMonthly {
					t.Fatalf("unexpected preference %q", c.WashPreference)
				}
				return c, nil
			},
		)

		w := serve(r, http.MethodPost, "/Customer", `{"id_number":"555","full_name":"Ana","wash_preference":"Monthly"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Header().Get("Location") != "/Customer/555" {
			t.Fatalf("unexpected location %q", w.Header().Get("Location"))
		}
		if gjson.Get(w.Body.String(), "id_number").String() != "555" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update uses path id", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Update(gomock.Any(), "123", gomock.Any()).Return(entities.Customer{IDNumber: "123", FullName: "New"}, nil)

		w := serve(r, http.MethodPut, "/Customer/123", `{"full_name":"New"}`)
		if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "full_name").String() != "New" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "123").Return(nil)

		w := serve(r, http.MethodDelete, "/Customer/123", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gjson.Get(w.Body.String(), "message").String() != "Customer with ID '123' deleted successfully" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "404").Return(usecase.ErrCustomerNotFound)

		w := serve(r, http.MethodDelete, "/Customer/404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
