package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/experienceflow/domainmap/internal/transport"
)

// fixture loads a canned API response from testdata.
func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read testdata file %s: %v", name, err)
	}
	return data
}

// newTestGateway builds a gateway against the given handler with a
// pre-authenticated partner token.
func newTestGateway(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := transport.New(server.URL)
	auth := NewAuth(session, Credentials{Email: "admin@example.com", Password: "secret"})
	auth.partnerToken = "partner-tok-1"
	return NewClient(session, auth)
}

func TestIndustries(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/industry" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Token partner-tok-1" {
			t.Errorf("Expected partner token, got %q", auth)
		}
		w.Write(fixture(t, "industries.json"))
	}))

	industries, err := client.Industries(context.Background())
	if err != nil {
		t.Fatalf("Industries returned error: %v", err)
	}
	if len(industries) != 2 {
		t.Fatalf("Expected 2 industries, got %d", len(industries))
	}
	if industries[0].ID != 1915 || industries[0].Name != "retail_banking" {
		t.Errorf("Unexpected first industry: %+v", industries[0])
	}
	if industries[0].DisplayName == nil || *industries[0].DisplayName != "Retail Banking" {
		t.Errorf("Expected displayName Retail Banking, got %v", industries[0].DisplayName)
	}
}

func TestIndustryCategories(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/industry/category" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"id":9,"name":"BFSI"}],"message":"ok"}`))
	}))

	categories, err := client.IndustryCategories(context.Background())
	if err != nil {
		t.Fatalf("IndustryCategories returned error: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "BFSI" {
		t.Errorf("Unexpected categories: %+v", categories)
	}
}

func TestIndustryDetails(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/industry/1915" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write(fixture(t, "industry_detail.json"))
	}))

	detail, err := client.IndustryDetails(context.Background(), 1915)
	if err != nil {
		t.Fatalf("IndustryDetails returned error: %v", err)
	}
	if detail.ID != 1915 {
		t.Errorf("Expected industry 1915, got %d", detail.ID)
	}
	if len(detail.Roles) != 3 {
		t.Fatalf("Expected 3 roles, got %d", len(detail.Roles))
	}
	role := detail.Roles[0]
	if role.ID != 41 || role.LevelName != "L1" || role.RoleDisplayName != "Branch Manager" {
		t.Errorf("Unexpected first role: %+v", role)
	}
}

func TestKPIs(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/industry-all-kpi/1915" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "1" {
			t.Errorf("Expected type=1 query, got %q", got)
		}
		w.Write(fixture(t, "kpis_list.json"))
	}))

	envelope, err := client.KPIs(context.Background(), 1915)
	if err != nil {
		t.Fatalf("KPIs returned error: %v", err)
	}
	if envelope == nil {
		t.Fatal("Expected envelope, got nil")
	}
	if len(envelope.Data) != 3 {
		t.Fatalf("Expected 3 KPIs, got %d", len(envelope.Data))
	}

	kpi := envelope.Data[0]
	if kpi.ID != 7 || kpi.Name != "sc" || kpi.DisplayName != "Stories Closed" {
		t.Errorf("Unexpected first KPI: %+v", kpi)
	}
	if kpi.FunctionName != "Delivery Management" || kpi.Category != "Delivery" {
		t.Errorf("Unexpected KPI function/category: %+v", kpi)
	}
	if len(kpi.Attributes) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(kpi.Attributes))
	}
	if kpi.Attributes[0].AttributeName != "Goal" {
		t.Errorf("Expected Goal attribute, got %q", kpi.Attributes[0].AttributeName)
	}
	if kpi.Attributes[0].DefaultValue == nil || *kpi.Attributes[0].DefaultValue != "42" {
		t.Errorf("Expected Goal default 42, got %v", kpi.Attributes[0].DefaultValue)
	}
	if len(kpi.MetricAttributes) != 2 {
		t.Errorf("Expected 2 metric attributes, got %d", len(kpi.MetricAttributes))
	}

	// The embedded blob stays an opaque string at this layer.
	var blob map[string]any
	if err := json.Unmarshal([]byte(kpi.Data), &blob); err != nil {
		t.Errorf("KPI data blob should be embedded JSON: %v", err)
	}
}

func TestKPIsWithoutPayload(t *testing.T) {
	t.Run("empty body yields nil envelope", func(t *testing.T) {
		client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		envelope, err := client.KPIs(context.Background(), 1915)
		if err != nil {
			t.Fatalf("KPIs returned error: %v", err)
		}
		if envelope != nil {
			t.Errorf("Expected nil envelope for empty body, got %+v", envelope)
		}
	})

	t.Run("missing data key yields empty list", func(t *testing.T) {
		client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"nothing here"}`))
		}))

		envelope, err := client.KPIs(context.Background(), 1915)
		if err != nil {
			t.Fatalf("KPIs returned error: %v", err)
		}
		if envelope == nil {
			t.Fatal("Expected envelope for decodable body")
		}
		if len(envelope.Data) != 0 {
			t.Errorf("Expected no KPIs, got %d", len(envelope.Data))
		}
	})
}

func TestFunctions(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/function" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write(fixture(t, "functions_list.json"))
	}))

	functions, err := client.Functions(context.Background())
	if err != nil {
		t.Fatalf("Functions returned error: %v", err)
	}
	if len(functions) != 3 {
		t.Fatalf("Expected 3 function blobs, got %d", len(functions))
	}
	if functions[0].Name != "Sales Operations" || len(functions[0].IndustryFunction) != 2 {
		t.Errorf("Unexpected first blob: %+v", functions[0])
	}

	record := functions[0].IndustryFunction[0]
	if record.ID != 11 || record.IndustryFunctionMapID != 210 {
		t.Errorf("Unexpected industry function ids: %+v", record)
	}
	if record.IndustryName != "Retail Banking" {
		t.Errorf("Unexpected industry name: %q", record.IndustryName)
	}

	// Null fields stay nil pointers.
	support := functions[1].IndustryFunction[0]
	if support.Description != nil || support.UseCaseID != nil {
		t.Errorf("Expected nil description and useCaseId, got %+v", support)
	}
	if len(functions[2].IndustryFunction) != 0 {
		t.Errorf("Expected empty industry_function list, got %d", len(functions[2].IndustryFunction))
	}
}

func TestContexts(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contextTypes" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"id":1,"name":"Region","displayName":"Region"},{"id":2,"name":"Team"}],"message":"ok"}`))
	}))

	contexts, err := client.Contexts(context.Background())
	if err != nil {
		t.Fatalf("Contexts returned error: %v", err)
	}
	if len(contexts) != 2 {
		t.Fatalf("Expected 2 context types, got %d", len(contexts))
	}
	if contexts[1].DisplayName != nil {
		t.Errorf("Expected nil displayName, got %v", contexts[1].DisplayName)
	}
}

func TestIndustryMetricFunctions(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/industry-metric/function/1915" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write(fixture(t, "metric_functions.json"))
	}))

	records, err := client.IndustryMetricFunctions(context.Background(), 1915)
	if err != nil {
		t.Fatalf("IndustryMetricFunctions returned error: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}

	first := records[0]
	if first.ID != 301 || first.TypeName != "Context" || first.FunctionCode != "FIN-001" {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if first.Attribute == nil || *first.Attribute != "region_code" {
		t.Errorf("Expected attribute region_code, got %v", first.Attribute)
	}
	if first.Aggregation != nil {
		t.Errorf("Expected nil aggregation, got %v", first.Aggregation)
	}
	if records[1].TypeName != "Metric" {
		t.Errorf("Expected Metric record second, got %q", records[1].TypeName)
	}
	if records[2].Description != nil {
		t.Errorf("Expected nil description on third record, got %v", records[2].Description)
	}
}

func TestDictionary(t *testing.T) {
	var gotBody dictionaryRequest
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/domains/getDictionary" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode dictionary request body: %v", err)
		}
		w.Write(fixture(t, "dictionary.json"))
	}))

	entries, err := client.Dictionary(context.Background(), "FIN-001")
	if err != nil {
		t.Fatalf("Dictionary returned error: %v", err)
	}
	if gotBody.FunctionCode != "FIN-001" {
		t.Errorf("Expected functionCode FIN-001 in body, got %q", gotBody.FunctionCode)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "dim_region" || len(entries[0].EntityAttributes) != 2 {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	attr := entries[0].EntityAttributes[0]
	if attr.Name != "region_code" || attr.DataType == nil || *attr.DataType != "varchar" {
		t.Errorf("Unexpected first attribute: %+v", attr)
	}
}

func TestDictionaryList(t *testing.T) {
	client := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/domains/dictionaryList/FIN-001" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"data":` + string(fixture(t, "dictionary.json")) + `,"message":"ok"}`))
	}))

	entries, err := client.DictionaryList(context.Background(), "FIN-001")
	if err != nil {
		t.Fatalf("DictionaryList returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Name != "fact_sales" || len(entries[1].EntityAttributes) != 3 {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}
