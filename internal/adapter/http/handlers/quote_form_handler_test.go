package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quote_service/internal/adapter/http/handlers/mocks"
	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"
	"quote_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func setupQuoteFormRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteFormUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteFormUseCase(ctrl)
	h := NewQuoteFormHandler(uc)

	r := gin.New()
	r.POST("/v1/quote-forms/steps/:step/validate", h.ValidateStep)
	r.POST("/v1/quote-forms/steps/:step/assist", h.Assist)
	r.POST("/v1/quote-forms/analysis", h.Analyze)
	r.GET("/v1/calculators/volume", h.VolumeProfile)
	r.POST("/v1/calculators/buyout", h.Buyout)
	return r, uc
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestQuoteFormHandler_ValidateStep(t *testing.T) {
	r, uc := setupQuoteFormRouter(t)
	uc.EXPECT().
		ValidateStep(quoteform.StepVolume, gomock.Any()).
		DoAndReturn(func(_ quoteform.Step, form entities.QuoteRequestForm) quoteform.StepResult {
			if form.MonthlyVolume.Mono != 10 {
				t.Fatalf("unexpected form volume: %+v", form.MonthlyVolume)
			}
			return quoteform.StepResult{
				IsValid: false,
				Errors:  map[string]string{"monthlyVolume": "Total monthly volume must be at least 50 pages"},
			}
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/v1/quote-forms/steps/2/validate", `{"monthlyVolume":{"mono":10,"colour":0}}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"step":     float64(2),
		"stepName": "Volume",
		"isValid":  false,
		"errors":   map[string]any{"monthlyVolume": "Total monthly volume must be at least 50 pages"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestQuoteFormHandler_ValidateStep_ValidResultHasEmptyErrors(t *testing.T) {
	r, uc := setupQuoteFormRouter(t)
	uc.EXPECT().ValidateStep(quoteform.StepCompanyDetails, gomock.Any()).Return(quoteform.StepResult{IsValid: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/v1/quote-forms/steps/1/validate", `{}`))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"errors":{}`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestQuoteFormHandler_InvalidStep(t *testing.T) {
	for _, step := range []string{"0", "-1", "abc"} {
		t.Run(step, func(t *testing.T) {
			r, _ := setupQuoteFormRouter(t)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, postJSON("/v1/quote-forms/steps/"+step+"/validate", `{}`))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if body := decodeError(t, w); body.Error.Code != "INVALID_STEP" {
				t.Fatalf("unexpected code %q", body.Error.Code)
			}
		})
	}
}

func TestQuoteFormHandler_Assist(t *testing.T) {
	r, uc := setupQuoteFormRouter(t)
	uc.EXPECT().
		Assist(quoteform.StepRequirements, gomock.Any()).
		Return(usecase.Assistance{Defaults: quoteform.SmartDefaults{EssentialFeatures: []string{"Secure Print"}}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/v1/quote-forms/steps/5/assist", `{"industryType":"Legal"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"essentialFeatures":["Secure Print"]`) {
		t.Fatalf("expected defaults in body, got %s", w.Body.String())
	}
}

func TestQuoteFormHandler_Analyze(t *testing.T) {
	r, uc := setupQuoteFormRouter(t)
	uc.EXPECT().
		Analyze(gomock.Any()).
		Return(usecase.FormAnalysis{VolumeRange: "0-6k", MonthlyCostLabel: "£52.00"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/v1/quote-forms/analysis", validFormBody))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "0-6k") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	t.Run("invalid enum", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/v1/quote-forms/analysis", `{"requirements":{"priority":"cheap"}}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteFormHandler_VolumeProfile(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, uc := setupQuoteFormRouter(t)
		uc.EXPECT().VolumeProfile(8000, 2000).Return(usecase.VolumeProfile{
			Total: 10000, TotalLabel: "10,000", VolumeRange: "6k-13k", SuggestedSpeed: 25, LeadFee: 20,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/calculators/volume?mono=8000&colour=2000", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got usecase.VolumeProfile
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.VolumeRange != "6k-13k" || got.TotalLabel != "10,000" {
			t.Fatalf("unexpected profile %+v", got)
		}
	})

	t.Run("negative volume", func(t *testing.T) {
		r, _ := setupQuoteFormRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/calculators/volume?mono=-5", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("use case rejects", func(t *testing.T) {
		r, uc := setupQuoteFormRouter(t)
		uc.EXPECT().VolumeProfile(0, 0).Return(usecase.VolumeProfile{}, usecase.ErrInvalidVolume)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/calculators/volume", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteFormHandler_Buyout(t *testing.T) {
	r, uc := setupQuoteFormRouter(t)
	uc.EXPECT().
		Buyout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(lease *float64, end *time.Time) string {
			if lease == nil || *lease != 450 {
				t.Fatalf("unexpected lease %v", lease)
			}
			if end == nil || end.Format("2006-01-02") != "2025-06-30" {
				t.Fatalf("unexpected end %v", end)
			}
			return "£180.00"
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/v1/calculators/buyout", `{"quarterlyLease":450,"contractEndDate":"2025-06-30"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if strings.TrimSpace(w.Body.String()) != `{"buyout":"£180.00"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	t.Run("bad date", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/v1/calculators/buyout", `{"contractEndDate":"30/06/2025"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
