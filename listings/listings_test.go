package listings

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staymate/models"
	"staymate/store"

	"github.com/julienschmidt/httprouter"
)

func newTestHandler() *Handler {
	return NewHandler(store.NewMemory(Seed()), nil)
}

func TestGetListingsDefaultView(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/listings", nil)
	w := httptest.NewRecorder()

	h.GetListings(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		OK       bool             `json:"ok"`
		Count    int              `json:"count"`
		Listings []models.Listing `json:"listings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.OK || resp.Count != 3 || len(resp.Listings) != 3 {
		t.Fatalf("expected the 3 seed listings, got count=%d", resp.Count)
	}
	// default sort is newest first
	if resp.Listings[0].ListingID != "3" {
		t.Errorf("first listing = %s, want the most recent seed", resp.Listings[0].ListingID)
	}
}

func TestGetListingsFiltered(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/listings?category=Budget&sort=rent_asc", nil)
	w := httptest.NewRecorder()

	h.GetListings(w, r, nil)

	var resp struct {
		Listings []models.Listing `json:"listings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Listings) != 2 {
		t.Fatalf("Budget filter: got %d listings, want 2", len(resp.Listings))
	}
	if resp.Listings[0].Rent > resp.Listings[1].Rent {
		t.Error("rent_asc not applied")
	}
}

func TestGetListingsDeepLink(t *testing.T) {
	h := newTestHandler()

	r := httptest.NewRequest("GET", "/api/listings?propertyId=2", nil)
	w := httptest.NewRecorder()
	h.GetListings(w, r, nil)

	var resp struct {
		Selected *models.Listing `json:"selected"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Selected == nil || resp.Selected.ListingID != "2" {
		t.Error("propertyId deep link did not select listing 2")
	}

	// unknown id: listings still returned, no selection
	r = httptest.NewRequest("GET", "/api/listings?propertyId=nope", nil)
	w = httptest.NewRecorder()
	h.GetListings(w, r, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unknown propertyId should not fail, status = %d", w.Code)
	}
	resp.Selected = nil
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Selected != nil {
		t.Error("unknown propertyId produced a selection")
	}
}

func TestGetAmenities(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/amenities", nil)
	w := httptest.NewRecorder()

	h.GetAmenities(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		OK        bool     `json:"ok"`
		Amenities []string `json:"amenities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || len(resp.Amenities) != len(AllAmenities) {
		t.Fatalf("amenities = %v", resp.Amenities)
	}
	if resp.Amenities[0] != "WiFi" {
		t.Errorf("first amenity = %q", resp.Amenities[0])
	}
}

func TestGetListingNotFound(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/listings/404", nil)
	w := httptest.NewRecorder()

	h.GetListing(w, r, httprouter.Params{{Key: "listingid", Value: "404"}})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Listing not found") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateListingDerivesFields(t *testing.T) {
	h := newTestHandler()

	body := `{"name":"Lakeside PG","type":"pg","rent":5000,"address":"HSR Layout, Bangalore","amenities":"WiFi, Laundry","available":true}`
	r := httptest.NewRequest("POST", "/api/listings", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.CreateListing(w, r, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var created models.Listing
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Category != models.CategoryBudget {
		t.Errorf("category = %q, want Budget for rent 5000", created.Category)
	}
	if len(created.Images) != 1 || created.Images[0] != PlaceholderImage {
		t.Error("missing image must fall back to the placeholder")
	}
	if created.ListingID == "" {
		t.Error("no id assigned")
	}
	if len(created.Amenities) != 2 || created.Amenities[0] != "WiFi" {
		t.Errorf("amenities = %v", created.Amenities)
	}
	if created.Location.Coordinates.Latitude == 0 {
		t.Error("coordinates not defaulted")
	}

	// newest listing surfaces first under the default sort
	lr := httptest.NewRequest("GET", "/api/listings", nil)
	lw := httptest.NewRecorder()
	h.GetListings(lw, lr, nil)
	var resp struct {
		Listings []models.Listing `json:"listings"`
	}
	if err := json.Unmarshal(lw.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Listings) != 4 || resp.Listings[0].ListingID != created.ListingID {
		t.Error("new listing did not surface at the top of the default view")
	}
}

func TestCreateListingValidation(t *testing.T) {
	h := newTestHandler()

	cases := []string{
		`{"type":"pg","rent":5000,"address":"x"}`,       // no name
		`{"name":"A","type":"pg","rent":5000}`,          // no address
		`{"name":"A","type":"pg","rent":-1,"address":"x"}`, // negative rent
	}
	for _, body := range cases {
		r := httptest.NewRequest("POST", "/api/listings", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.CreateListing(w, r, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestExportCSV(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/export/listings", nil)
	w := httptest.NewRecorder()

	h.ExportCSV(w, r, nil)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "staymate_search_results_") {
		t.Errorf("content disposition = %q", cd)
	}

	rows, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 { // header + 3 seeds
		t.Fatalf("row count = %d, want 4", len(rows))
	}
	if rows[0][2] != "Rent (INR)" {
		t.Errorf("header = %v", rows[0])
	}
	// seed 3 is occupied
	for _, row := range rows[1:] {
		if row[0] == "St. Jude's Hostel" && row[6] != "Occupied" {
			t.Errorf("availability column = %q, want Occupied", row[6])
		}
	}
}

func TestExportCSVEmptyResult(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/export/listings?q=doesnotexist", nil)
	w := httptest.NewRecorder()

	h.ExportCSV(w, r, nil)

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("empty export should answer JSON, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "No listings to download") {
		t.Errorf("body = %s", w.Body.String())
	}
}
