package listings

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"staymate/models"
	"staymate/utils"

	"github.com/julienschmidt/httprouter"
)

var exportHeader = []string{"Name", "Type", "Rent (INR)", "Category", "Address", "Amenities", "Availability"}

func exportRow(l models.Listing) []string {
	availability := "Occupied"
	if l.Available {
		availability = "Available"
	}
	return []string{
		l.Name,
		string(l.Type),
		strconv.Itoa(l.Rent),
		string(l.Category),
		l.Location.Address,
		strings.Join(l.Amenities, ", "),
		availability,
	}
}

// ExportCSV streams the currently filtered/sorted result set as CSV. Column
// set and order never vary with the filter state. An empty result produces
// a JSON notice instead of a file.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	all, err := h.Store.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	result := Apply(all, ParseCriteria(r))
	if len(result) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"ok":      false,
			"message": "No listings to download",
		})
		return
	}

	filename := fmt.Sprintf("staymate_search_results_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return
	}
	for _, l := range result {
		if err := cw.Write(exportRow(l)); err != nil {
			return
		}
	}
	cw.Flush()
}
