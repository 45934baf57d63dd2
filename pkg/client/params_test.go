package client

import (
	"errors"
	"testing"

	"github.com/Sternrassler/parcl-client/pkg/models"
	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestMetricsParams_Values(t *testing.T) {
	tests := []struct {
		name   string
		params MetricsParams
		want   string
	}{
		{"empty", MetricsParams{}, ""},
		{"zero values dropped", MetricsParams{Limit: 0, Offset: 0, AutoPaginate: true}, ""},
		{
			name: "all fields",
			params: MetricsParams{
				Limit: 10, Offset: 20,
				StartDate: "2023-01-01", EndDate: "2023-12-31",
				PropertyType: models.PropertyTypeCondo,
			},
			want: "end_date=2023-12-31&limit=10&offset=20&property_type=CONDO&start_date=2023-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Values().Encode(); got != tt.want {
				t.Errorf("Values() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetricsParams_BatchBody(t *testing.T) {
	body, err := MetricsParams{Limit: 3, PropertyType: models.PropertyTypeSingleFamily}.BatchBody([]int64{1, 2})
	if err != nil {
		t.Fatalf("BatchBody() error = %v", err)
	}
	want := map[string]any{
		"parcl_id":      []int64{1, 2},
		"limit":         3,
		"property_type": "SINGLE_FAMILY",
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("BatchBody() mismatch (-want +got):\n%s", diff)
	}

	if _, err := (MetricsParams{}).BatchBody(nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("BatchBody(nil) error = %v, want ErrInvalidParameter", err)
	}
}

func TestPortfolioMetricsParams(t *testing.T) {
	p := PortfolioMetricsParams{PortfolioSize: models.PortfolioSize1000Plus, StartDate: "2024-01-01"}

	if got, want := p.Values().Encode(), "portfolio_size=PORTFOLIO_1000_PLUS&start_date=2024-01-01"; got != want {
		t.Errorf("Values() = %q, want %q", got, want)
	}

	body, err := p.BatchBody([]int64{5})
	if err != nil {
		t.Fatalf("BatchBody() error = %v", err)
	}
	if body["portfolio_size"] != "PORTFOLIO_1000_PLUS" {
		t.Errorf("portfolio_size = %v", body["portfolio_size"])
	}
	if _, ok := body["property_type"]; ok {
		t.Error("portfolio body must not carry property_type")
	}
}

func TestSearchParams_Values(t *testing.T) {
	p := SearchParams{
		Query:             "Los Angeles",
		LocationType:      models.LocationTypeCity,
		Region:            models.RegionPacific,
		StateAbbreviation: "ca",
		SortBy:            models.SortByTotalPopulation,
		SortOrder:         models.SortOrderDesc,
		Limit:             5,
	}

	want := "limit=5&location_type=CITY&query=Los+Angeles&region=PACIFIC&sort_by=TOTAL_POPULATION&sort_order=DESC&state_abbreviation=CA"
	if got := p.Values().Encode(); got != want {
		t.Errorf("Values() = %q, want %q", got, want)
	}
}

func TestPropertySearchParams_Values(t *testing.T) {
	t.Run("requires parcl id", func(t *testing.T) {
		if _, err := (PropertySearchParams{}).Values(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Values() error = %v, want ErrInvalidParameter", err)
		}
	})

	t.Run("defaults property type", func(t *testing.T) {
		v, err := PropertySearchParams{ParclID: 5826765}.Values()
		if err != nil {
			t.Fatalf("Values() error = %v", err)
		}
		if got, want := v.Encode(), "parcl_id=5826765&property_type=ALL_PROPERTIES"; got != want {
			t.Errorf("Values() = %q, want %q", got, want)
		}
	})

	t.Run("flags as integers", func(t *testing.T) {
		v, err := PropertySearchParams{
			ParclID:                  1,
			PropertyType:             models.PropertyTypeSingleFamily,
			BedroomsMin:              3,
			CurrentInvestorOwnedFlag: boolPtr(true),
			CurrentOnMarketFlag:      boolPtr(false),
			CurrentEntityOwnerName:   models.OwnerInvitationHomes,
		}.Values()
		if err != nil {
			t.Fatalf("Values() error = %v", err)
		}
		checks := map[string]string{
			"bedrooms_min":                "3",
			"current_investor_owned_flag": "1",
			"current_on_market_flag":      "0",
			"current_entity_owner_name":   "INVITATION_HOMES",
		}
		for key, want := range checks {
			if got := v.Get(key); got != want {
				t.Errorf("%s = %q, want %q", key, got, want)
			}
		}
		if v.Has("event_history_sale_flag") {
			t.Error("unset flags must not be sent")
		}
	})
}

func TestEventHistoryParams_Body(t *testing.T) {
	ids := make([]int64, maxEventHistoryIDs+1)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	tests := []struct {
		name    string
		ids     []int64
		wantErr bool
	}{
		{"empty", nil, true},
		{"one", ids[:1], false},
		{"at limit", ids[:maxEventHistoryIDs], false},
		{"over limit", ids, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := EventHistoryParams{ParclPropertyIDs: tt.ids, EventType: models.EventTypeSale}.Body()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("Body() error = %v, want ErrInvalidParameter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Body() error = %v", err)
			}
			if body["event_type"] != "SALE" {
				t.Errorf("event_type = %v, want SALE", body["event_type"])
			}
			if _, ok := body["start_date"]; ok {
				t.Error("empty start_date must not be sent")
			}
		})
	}
}
