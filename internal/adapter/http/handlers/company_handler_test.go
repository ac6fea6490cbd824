package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"cleaning_coop/internal/adapter/http/handlers/mocks"
	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/domain/matching"
	"cleaning_coop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCompanyRouter(uc usecase.ICompanyUseCase) *gin.Engine {
	h := NewCompanyHandler(uc)
	r := gin.New()
	r.POST("/v1/companies", h.Register)
	r.GET("/v1/companies", h.List)
	r.GET("/v1/companies/:id", h.Get)
	r.PATCH("/v1/companies/:id/approval", h.SetApproval)
	r.POST("/v1/companies/match", h.Match)
	r.GET("/v1/requests/:id/matches", h.MatchForRequest)
	return r
}

func TestCompanyHandler_Match(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not yet applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		uc.EXPECT().Match(gomock.Any(), gomock.Len(0), matching.OrderNewest).Return(matching.Result{}, nil)

		w := perform(newCompanyRouter(uc), http.MethodPost, "/v1/companies/match", `{"regions":[]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["applied"] != false {
			t.Fatalf("expected applied=false, got %v", got)
		}
	})

	t.Run("applied no results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		selected := []entities.Region{{Province: "서울", District: "서초구"}}
		uc.EXPECT().Match(gomock.Any(), selected, matching.OrderName).
			Return(matching.Result{Applied: true, Selected: selected}, nil)

		w := perform(newCompanyRouter(uc), http.MethodPost, "/v1/companies/match", `{"regions":[{"key":"서울>서초구"}],"order":"name"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["applied"] != true || got["count"] != float64(0) {
			t.Fatalf("unexpected body %v", got)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		w := perform(newCompanyRouter(uc), http.MethodPost, "/v1/companies/match", `{"regions":[],"order":"random"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("for request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		uc.EXPECT().MatchForRequest(gomock.Any(), int64(1), matching.OrderOldest).
			Return(matching.Result{Applied: true, Companies: []entities.Company{{ID: 3, Status: entities.CompanyStatusApproved}}}, nil)

		w := perform(newCompanyRouter(uc), http.MethodGet, "/v1/requests/1/matches?order=oldest", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCompanyHandler_Pool(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("register", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		uc.EXPECT().Register(gomock.Any(), gomock.AssignableToTypeOf(usecase.RegisterCompanyInput{})).
			Return(entities.Company{ID: 3, Name: "깨끗한협동조합", Status: entities.CompanyStatusPending}, nil)

		w := perform(newCompanyRouter(uc), http.MethodPost, "/v1/companies", `{"name":"깨끗한협동조합","regions":[{"key":"서울>강남구"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		uc.EXPECT().SetApproval(gomock.Any(), int64(3), entities.CompanyStatusApproved).
			Return(entities.Company{ID: 3, Status: entities.CompanyStatusApproved}, nil)

		w := perform(newCompanyRouter(uc), http.MethodPatch, "/v1/companies/3/approval", `{"status":"approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), entities.CompanyStatusPending).Return([]entities.Company{}, nil)

		w := perform(newCompanyRouter(uc), http.MethodGet, "/v1/companies?status=PENDING", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Company{}, entities.ErrNotFound)

		w := perform(newCompanyRouter(uc), http.MethodGet, "/v1/companies/4", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
