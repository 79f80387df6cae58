package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type yearPayload struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Title     string `json:"title"`
	Period    string `json:"period"`
	IsDefault bool   `json:"is_default"`
}

func createYear(t *testing.T, env *testEnv, body map[string]any) yearPayload {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/tenancy/financial-years", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var year yearPayload
	decodeData(t, w, &year)
	return year
}

func TestFinancialYearEndpoints_DefaultSingleton(t *testing.T) {
	env := newTestEnv(t)
	company := createCompany(t, env, map[string]any{"name": "Mills & Co"})

	first := createYear(t, env, map[string]any{
		"company_code": company.Code,
		"title":        "FY 2023-24",
		"start_date":   "2023-07-01",
		"end_date":     "2024-06-30",
	})
	assert.Equal(t, "01", first.Code)
	assert.True(t, first.IsDefault, "first year of a company becomes the default")
	assert.Equal(t, "2023-07-01 to 2024-06-30", first.Period)

	second := createYear(t, env, map[string]any{
		"company_code": company.Code,
		"title":        "FY 2024-25",
		"start_date":   "2024-07-01",
		"end_date":     "2025-06-30",
	})
	assert.Equal(t, "02", second.Code)
	assert.False(t, second.IsDefault)

	t.Run("set-default flips the flag to the new year", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/tenancy/financial-years/"+second.ID+"/set-default", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/v1/tenancy/financial-years/default?company_code="+company.Code, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var def yearPayload
		decodeData(t, w, &def)
		assert.Equal(t, second.ID, def.ID)

		w = env.do(t, http.MethodGet, "/api/v1/tenancy/financial-years/"+first.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var old yearPayload
		decodeData(t, w, &old)
		assert.False(t, old.IsDefault)
	})
}

func TestFinancialYearEndpoints_DateRules(t *testing.T) {
	env := newTestEnv(t)
	company := createCompany(t, env, map[string]any{"name": "Mills & Co"})

	t.Run("end before start rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/tenancy/financial-years", map[string]any{
			"company_code": company.Code,
			"title":        "Backwards",
			"start_date":   "2024-06-30",
			"end_date":     "2023-07-01",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		code, _ := decodeError(t, w)
		assert.Equal(t, "ERR_INVALID_INPUT", code)
	})

	t.Run("span under thirty days rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/tenancy/financial-years", map[string]any{
			"company_code": company.Code,
			"title":        "Too short",
			"start_date":   "2024-01-01",
			"end_date":     "2024-01-10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown company rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/tenancy/financial-years", map[string]any{
			"company_code": "99",
			"title":        "Orphan",
			"start_date":   "2023-07-01",
			"end_date":     "2024-06-30",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFinancialYearEndpoints_DeleteGuard(t *testing.T) {
	env := newTestEnv(t)
	company := createCompany(t, env, map[string]any{"name": "Mills & Co"})
	year := createYear(t, env, map[string]any{
		"company_code": company.Code,
		"title":        "FY 2023-24",
		"start_date":   "2023-07-01",
		"end_date":     "2024-06-30",
	})

	w := env.do(t, http.MethodPost, "/api/v1/coding/accounts", map[string]any{
		"company_code": company.Code,
		"year_code":    year.Code,
		"level":        1,
		"code":         "1",
		"title":        "Assets",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodDelete, "/api/v1/tenancy/financial-years/"+year.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, "ERR_REFERENCE_CONFLICT", code)
}
