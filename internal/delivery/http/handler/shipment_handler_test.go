package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainReference "package-intake/internal/domain/reference"
	domainShipment "package-intake/internal/domain/shipment"
	"package-intake/internal/usecase/shipment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShipmentRepo struct {
	shipments map[int64]*domainShipment.Shipment
	nextID    int64

	searchFilter *domainShipment.SearchFilter
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{shipments: make(map[int64]*domainShipment.Shipment), nextID: 1}
}

func (f *stubShipmentRepo) Create(_ context.Context, s *domainShipment.Shipment) error {
	s.RowID = f.nextID
	f.nextID++
	stored := *s
	f.shipments[s.RowID] = &stored
	return nil
}

func (f *stubShipmentRepo) GetByID(_ context.Context, id int64) (*domainShipment.Shipment, error) {
	s, ok := f.shipments[id]
	if !ok {
		return nil, domainShipment.ErrShipmentNotFound
	}
	return s, nil
}

func (f *stubShipmentRepo) Update(_ context.Context, s *domainShipment.Shipment) error {
	if _, ok := f.shipments[s.RowID]; !ok {
		return domainShipment.ErrShipmentNotFound
	}
	stored := *s
	f.shipments[s.RowID] = &stored
	return nil
}

func (f *stubShipmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.shipments[id]; !ok {
		return domainShipment.ErrShipmentNotFound
	}
	delete(f.shipments, id)
	return nil
}

func (f *stubShipmentRepo) List(_ context.Context) ([]*domainShipment.Shipment, error) {
	var out []*domainShipment.Shipment
	for id := f.nextID - 1; id >= 1; id-- {
		if s, ok := f.shipments[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *stubShipmentRepo) GetByTrackingNumber(_ context.Context, _ string) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *stubShipmentRepo) GetByOrderNumber(_ context.Context, _ string) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *stubShipmentRepo) GetByScannedNumber(_ context.Context, _ string) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *stubShipmentRepo) ListByClient(_ context.Context, _ string) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) ListByStatus(_ context.Context, _ string) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) ListScanned(_ context.Context) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) ListUnscanned(_ context.Context) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) FindTrackingInScanned(_ context.Context, _ string) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *stubShipmentRepo) ListTrackingInScanned(_ context.Context, _ string) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) FindTrackingInScannedForClient(_ context.Context, _ string, _ int64) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *stubShipmentRepo) GetByTrackingNumberForClient(_ context.Context, _ string, _ int64) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *stubShipmentRepo) ListToday(_ context.Context) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) ListByScanDate(_ context.Context, _ time.Time) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) ListByScanDateRange(_ context.Context, _, _ time.Time) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *stubShipmentRepo) ListRecent(_ context.Context, _ int) ([]*domainShipment.Shipment, error) {
	return f.List(context.Background())
}

func (f *stubShipmentRepo) Search(_ context.Context, filter *domainShipment.SearchFilter) ([]*domainShipment.Shipment, int64, error) {
	f.searchFilter = filter
	return nil, 0, nil
}

func (f *stubShipmentRepo) DistinctScanUsers(_ context.Context) ([]string, error) {
	return []string{"alice"}, nil
}

func (f *stubShipmentRepo) DistinctStatuses(_ context.Context) ([]string, error) {
	return []string{"RECEIVED"}, nil
}

type stubResolver struct{}

func (stubResolver) GetByID(_ context.Context, _ int64) (*domainReference.Reference, error) {
	return nil, domainReference.ErrReferenceNotFound
}

func (stubResolver) Lookup(_ context.Context, _, _ string) (*domainReference.Reference, error) {
	return nil, nil
}

func (stubResolver) FindOrCreate(_ context.Context, refType, value, description string) (*domainReference.Reference, error) {
	return &domainReference.Reference{RowID: 1, Type: refType, Value: value, Description: description}, nil
}

func newTestRouter() (*gin.Engine, *stubShipmentRepo) {
	gin.SetMode(gin.TestMode)
	repo := newStubShipmentRepo()
	service := shipment.NewService(repo, stubResolver{})
	h := NewShipmentHandler(service)

	router := gin.New()
	api := router.Group("/api")
	h.RegisterRoutes(api)
	return router, repo
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateShipmentReturnsCreated(t *testing.T) {
	router, repo := newTestRouter()

	body := []byte(`{"trackingNumber":"1Z999AA10123456784","client":"Acme Labs","shipDate":"2024-03-01"}`)
	w := doRequest(router, http.MethodPost, "/api/inbound-shipments", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, repo.shipments, 1)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-01", resp["shipDate"])
}

func TestCreateShipmentRejectsMalformedDate(t *testing.T) {
	router, _ := newTestRouter()

	body := []byte(`{"shipDate":"03/01/2024"}`)
	w := doRequest(router, http.MethodPost, "/api/inbound-shipments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateShipmentEchoesTypeDescription(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodPost, "/api/inbound-shipments", []byte(`{"trackingNumber":"T1"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	body := []byte(`{"trackingNumber":"T1","shipmentType":{"type":"PACKAGING","value":"Cold Chain","description":"Insulated cooler with gel packs"}}`)
	w = doRequest(router, http.MethodPut, "/api/inbound-shipments/1", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShipmentType struct {
			Description string `json:"description"`
		} `json:"shipmentType"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Insulated cooler with gel packs", resp.ShipmentType.Description)
}

func TestGetShipmentInvalidID(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetShipmentNotFound(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteShipmentNotFound(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodDelete, "/api/inbound-shipments/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListShipmentsEmptyIsNoContent(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestSearchCoercesPagingParams(t *testing.T) {
	router, repo := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/search?page=-3&size=0", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, repo.searchFilter)
	assert.Equal(t, 0, repo.searchFilter.Page)
	assert.Equal(t, shipment.DefaultPageSize, repo.searchFilter.Size)
}

func TestSearchByBodyBuildsFilter(t *testing.T) {
	router, repo := newTestRouter()

	body := []byte(`{"trackingNumber":"1Z999","scanDateFrom":"2024-03-01","page":2,"size":50}`)
	w := doRequest(router, http.MethodPost, "/api/inbound-shipments/search", body)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, repo.searchFilter)
	require.NotNil(t, repo.searchFilter.TrackingNumber)
	assert.Equal(t, "1Z999", *repo.searchFilter.TrackingNumber)
	require.NotNil(t, repo.searchFilter.ScanDateFrom)
	assert.Equal(t, "2024-03-01", repo.searchFilter.ScanDateFrom.Format("2006-01-02"))
	assert.Equal(t, 2, repo.searchFilter.Page)
	assert.Equal(t, 50, repo.searchFilter.Size)
}

func TestSearchByBodyRejectsMalformedDate(t *testing.T) {
	router, _ := newTestRouter()

	body := []byte(`{"scanDateFrom":"03/01/2024"}`)
	w := doRequest(router, http.MethodPost, "/api/inbound-shipments/search", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsMalformedDate(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/search?scanDateFrom=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsInvertedRange(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet,
		"/api/inbound-shipments/search?scanDateFrom=2024-03-10&scanDateTo=2024-03-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEnvelopeShape(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/search", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "content")
	assert.Contains(t, resp, "totalElements")
	assert.Contains(t, resp, "totalPages")
	assert.Contains(t, resp, "hasNext")
	assert.Contains(t, resp, "hasPrevious")
}

func TestListRecentRejectsBadLimit(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/recent?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/inbound-shipments/recent?limit=20001", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByScanDateRejectsBadDate(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/date/March-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDateRangeRequiresBothBounds(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/date-range?from=2024-03-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDistinctScanUsers(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/inbound-shipments/scan-users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Equal(t, []string{"alice"}, users)
}
