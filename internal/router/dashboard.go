package router

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mpetrovic/rankboard/internal/dashboard"
	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
)

type DashboardRouter struct {
	e     *echo.Echo
	store *dataset.Store
	page  *template.Template
}

func NewDashboardRouter(e *echo.Echo, store *dataset.Store) *DashboardRouter {
	return &DashboardRouter{
		e:     e,
		store: store,
		page:  template.Must(template.New("dashboard").Parse(tmplDashboard)),
	}
}

func (r *DashboardRouter) Bind() {
	r.e.GET("/", r.indexHandler)
	r.e.GET("/api/chart", r.chartHandler)
	r.e.GET("/api/ranges", r.rangesHandler)
	r.e.GET("/api/meta", r.metaHandler)
}

type pageData struct {
	Ranges    dashboard.Ranges
	Selection domain.FilterSelection
}

func (r *DashboardRouter) indexHandler(c echo.Context) error {
	itemsMin, _ := r.store.ItemsRange()
	noiseMin, _ := r.store.NoiseRange()
	pairsMin, _ := r.store.PairsRange()

	data := pageData{
		Ranges: dashboard.ComputeRanges(r.store, itemsMin),
		Selection: domain.FilterSelection{
			NoiseLevel: noiseMin,
			NumItems:   itemsMin,
			NumPairs:   pairsMin,
		},
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return err
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// chartHandler builds the chart for an exact filter tuple.
// @Summary Chart data for a filter selection
// @Description Filters the dataset to the exact (noise, items, pairs) tuple and groups rows into one series per algorithm.
// @Produce json
// @Param noise query number true "Noise level"
// @Param items query integer true "Number of items"
// @Param pairs query integer true "Number of pairs"
// @Success 200 {object} dashboard.Chart
// @Failure 400 {object} map[string]string "invalid selection"
// @Failure 422 {object} map[string]string "empty selection"
// @Router /api/chart [get]
func (r *DashboardRouter) chartHandler(c echo.Context) error {
	noise, err := strconv.ParseFloat(c.QueryParam("noise"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "noise parameter is required and must be a number"})
	}

	items, err := strconv.Atoi(c.QueryParam("items"))
	if err != nil || items < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "items parameter is required and must be a positive integer"})
	}

	pairs, err := strconv.Atoi(c.QueryParam("pairs"))
	if err != nil || pairs < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "pairs parameter is required and must be a non-negative integer"})
	}

	chart, err := dashboard.BuildChart(r.store, domain.FilterSelection{
		NoiseLevel: noise,
		NumItems:   items,
		NumPairs:   pairs,
	})
	if err != nil {
		// Selection errors carry their own status via the global handler.
		return err
	}

	return c.JSON(http.StatusOK, chart)
}

// rangesHandler returns the slider bounds for a selected item count.
// @Summary Valid slider ranges
// @Description The pairs upper bound is capped by C(items, 2) and must be refetched whenever the item count changes.
// @Produce json
// @Param items query integer false "Currently selected number of items (defaults to the dataset minimum)"
// @Success 200 {object} dashboard.Ranges
// @Router /api/ranges [get]
func (r *DashboardRouter) rangesHandler(c echo.Context) error {
	itemsMin, _ := r.store.ItemsRange()

	items := itemsMin
	if raw := c.QueryParam("items"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "items parameter must be a positive integer"})
		}
		items = parsed
	}

	return c.JSON(http.StatusOK, dashboard.ComputeRanges(r.store, items))
}

type metaResponse struct {
	SnapshotID string       `json:"snapshotId"`
	Source     dataset.Type `json:"source"`
	Rows       int          `json:"rows"`
	Algorithms []string     `json:"algorithms"`
}

// metaHandler reports the loaded dataset snapshot.
// @Summary Dataset snapshot info
// @Produce json
// @Success 200 {object} metaResponse
// @Router /api/meta [get]
func (r *DashboardRouter) metaHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, metaResponse{
		SnapshotID: r.store.ID().String(),
		Source:     r.store.Source(),
		Rows:       r.store.Len(),
		Algorithms: r.store.Algorithms(),
	})
}
