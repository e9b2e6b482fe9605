package countries

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"country-db/feature/countries/corrections"
	"country-db/feature/countries/models"
	"country-db/feature/countries/sources"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, f sources.Fetcher) *fiber.App {
	t.Helper()
	svc := NewService(NewBuilder(f, corrections.Default().Normalize(), zap.NewNop()), time.Minute, zap.NewNop())
	feature := NewFeature(svc)
	assert.Equal(t, "countries", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), string(body)
}

func TestHandleList(t *testing.T) {
	fetcher := newPageFetcher()
	app := setupApp(t, fetcher)

	t.Run("JSON", func(t *testing.T) {
		status, contentType, body := doRequest(t, app, fiber.MethodGet, "/countries")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "application/json", contentType)

		var ds map[string]models.Record
		require.NoError(t, json.Unmarshal([]byte(body), &ds))
		assert.Len(t, ds, 5)
		assert.Equal(t, "ROMANIA", ds["ROU"].Name)
	})

	t.Run("CSV", func(t *testing.T) {
		status, contentType, body := doRequest(t, app, fiber.MethodGet, "/countries?format=csv&ignore=true")
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, strings.HasPrefix(contentType, "text/csv"))
		assert.True(t, strings.HasPrefix(body, "number,iso3,iso2,name,idc,region_a,region_b,region_c,region_d\n"))
		assert.Contains(t, body, "010,ATA,AQ,Antarctica,672,1,,,\n")
	})

	t.Run("YAML", func(t *testing.T) {
		status, _, body := doRequest(t, app, fiber.MethodGet, "/countries?format=yaml")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "ROU:")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		status, _, body := doRequest(t, app, fiber.MethodGet, "/countries?format=xml")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, "unknown output format")
	})

	// All requests above share one build.
	assert.Equal(t, int32(3), fetcher.calls.Load())
}

func TestHandleGet(t *testing.T) {
	app := setupApp(t, newPageFetcher())

	status, _, body := doRequest(t, app, fiber.MethodGet, "/countries/rou")
	assert.Equal(t, fiber.StatusOK, status)

	var rec models.Record
	require.NoError(t, json.Unmarshal([]byte(body), &rec))
	assert.Equal(t, models.Record{ISO3: "ROU", ISO2: "RO", Number: "642", Name: "ROMANIA", IDC: "40"}, rec)

	status, _, body = doRequest(t, app, fiber.MethodGet, "/countries/XXX")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "country not found")
}

func TestHandleAudit(t *testing.T) {
	app := setupApp(t, newPageFetcher())

	status, _, body := doRequest(t, app, fiber.MethodGet, "/countries/audit")
	require.Equal(t, fiber.StatusOK, status)

	var audit Audit
	require.NoError(t, json.Unmarshal([]byte(body), &audit))
	assert.NotEmpty(t, audit.BuildID)
	assert.Equal(t, 5, audit.Summary.Entities)
	assert.Len(t, audit.Patches, 4)
	assert.Equal(t, []string{"ATLANTIS"}, audit.Report.Unmatched)
	assert.Equal(t, "UNITED STATES OF AMERICA", audit.Report.Aliased["UNITED STATES"])
}

func TestHandleRebuild(t *testing.T) {
	fetcher := newPageFetcher()
	app := setupApp(t, fetcher)

	_, _, first := doRequest(t, app, fiber.MethodGet, "/countries/audit")
	status, _, second := doRequest(t, app, fiber.MethodPost, "/countries/rebuild")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int32(6), fetcher.calls.Load())

	var before Audit
	require.NoError(t, json.Unmarshal([]byte(first), &before))
	var after struct {
		BuildID string  `json:"build_id"`
		Summary Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(second), &after))
	assert.NotEqual(t, before.BuildID, after.BuildID)
	assert.Equal(t, 5, after.Summary.Entities)
}

func TestHandlers_BuildFailure(t *testing.T) {
	fetcher := newPageFetcher()
	delete(fetcher.pages, sources.NameWikipedia)
	app := setupApp(t, fetcher)

	for _, target := range []string{"/countries", "/countries/AFG", "/countries/audit"} {
		status, _, body := doRequest(t, app, fiber.MethodGet, target)
		assert.Equal(t, fiber.StatusInternalServerError, status, target)
		assert.Contains(t, body, "source unavailable", target)
	}

	status, _, _ := doRequest(t, app, fiber.MethodPost, "/countries/rebuild")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestService_CountriesReturnsCopy(t *testing.T) {
	svc := NewService(NewBuilder(newPageFetcher(), corrections.Default().Normalize(), zap.NewNop()), time.Minute, zap.NewNop())

	ds, err := svc.Countries(t.Context(), false)
	require.NoError(t, err)
	delete(ds, "AFG")

	again, err := svc.Countries(t.Context(), false)
	require.NoError(t, err)
	assert.Contains(t, again, "AFG")

	filtered, err := svc.Countries(t.Context(), true)
	require.NoError(t, err)
	for _, r := range filtered {
		assert.True(t, r.HasIDC())
	}
}
