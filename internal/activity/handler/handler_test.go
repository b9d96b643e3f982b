package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcomock/internal/activity/handler"
	"mcomock/internal/activity/service"
	"mcomock/internal/synth"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := synth.NewEngine(synth.DefaultBounds(), 42, true)
	svc, err := service.New(engine, log, nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.New(log, svc, nil).Register(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeRows(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	return rows
}

func TestResume(t *testing.T) {
	h := newRouter(t)

	t.Run("aggregate row", func(t *testing.T) {
		rec := get(t, h, "/resume?annee=2023")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		rows := decodeRows(t, rec)
		require.Len(t, rows, 1)
		assert.Contains(t, rows[0], "nb_sej")
		assert.NotContains(t, rows[0], "nb_pat")
	})

	t.Run("breakdown with custom age cuts", func(t *testing.T) {
		rec := get(t, h, "/resume?annee=23&var=sexe_trancheage&trancheage=10_20_30_40_50_60_70_80_90")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		assert.Len(t, rows, 20)
	})

	t.Run("missing year", func(t *testing.T) {
		rec := get(t, h, "/resume")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "bad_request", body["error"])
	})

	t.Run("unknown breakdown token", func(t *testing.T) {
		rec := get(t, h, "/resume?annee=23&var=planete")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("simulated empty result", func(t *testing.T) {
		rec := get(t, h, "/resume?annee=23&simulate_vide=TRUE")
		require.Equal(t, http.StatusNotFound, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "no_result", body["error"])
	})

	t.Run("small cells mask the patient count", func(t *testing.T) {
		rec := get(t, h, "/resume?annee=23&bool_nb_pat=TRUE&simulate_petit_effectif=TRUE")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		require.Len(t, rows, 1)
		assert.Equal(t, synth.SmallCellToken, rows[0]["nb_pat"])
		// the stay count itself stays numeric
		_, isNumber := rows[0]["nb_sej"].(float64)
		assert.True(t, isNumber)
	})

	t.Run("identical requests reproduce the body byte for byte", func(t *testing.T) {
		a := get(t, h, "/resume?annee=23&var=cmd&bool_nb_pat=TRUE")
		b := get(t, h, "/resume?annee=23&var=cmd&bool_nb_pat=TRUE")
		require.Equal(t, http.StatusOK, a.Code)
		assert.Equal(t, a.Body.String(), b.Body.String())
	})
}

func TestOtherEndpoints(t *testing.T) {
	h := newRouter(t)

	t.Run("diag_assoc renames the identity column", func(t *testing.T) {
		rec := get(t, h, "/diag_assoc?annee=23")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		require.NotEmpty(t, rows)
		assert.Contains(t, rows[0], "code_diag")
		assert.NotContains(t, rows[0], "diag")
	})

	t.Run("diag_assoc small cells stringify whole rows", func(t *testing.T) {
		rec := get(t, h, "/diag_assoc?annee=23&simulate_petit_effectif=TRUE")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		require.NotEmpty(t, rows)
		for col, v := range rows[0] {
			_, isString := v.(string)
			assert.True(t, isString, "column %s", col)
		}
	})

	t.Run("resume_prec_annee accepts the no-breakdown token", func(t *testing.T) {
		rec := get(t, h, "/resume_prec_annee?annee=2023&var=tous")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		assert.Len(t, rows, 5)
	})

	t.Run("tx_recours geographic levels", func(t *testing.T) {
		rec := get(t, h, "/tx_recours?annee=23&type_geo_tx_recours=reg")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		require.Len(t, rows, 8)
		assert.Equal(t, "reg", rows[0]["typ_geo"])
	})

	t.Run("dernier_trans ignores the small-cell toggle", func(t *testing.T) {
		rec := get(t, h, "/dernier_trans?annee=2023&simulate_petit_effectif=TRUE")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		require.Len(t, rows, 7)
		assert.Equal(t, float64(2023), rows[0]["annee"])
		assert.Contains(t, rows[0], "derniere_transmission")
	})

	t.Run("dimension listing", func(t *testing.T) {
		rec := get(t, h, "/dimensions")
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeRows(t, rec)
		require.NotEmpty(t, rows)
		assert.Equal(t, "sexe", rows[0]["var"])
		assert.Equal(t, "Sexe", rows[0]["libelle"])
	})

	t.Run("request id header set", func(t *testing.T) {
		rec := get(t, h, "/um?annee=23")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}
