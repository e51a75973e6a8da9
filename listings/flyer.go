package listings

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"staymate/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// BaseURL is the public address embedded in deep links; main overrides it
// from config at startup.
var BaseURL = "http://localhost:8080"

// DeepLink returns the shareable URL that auto-opens a listing.
func DeepLink(listingID string) string {
	return fmt.Sprintf("%s/?propertyId=%s", BaseURL, listingID)
}

// ListingQR serves a PNG QR code encoding the listing's deep link.
func (h *Handler) ListingQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("listingid")
	if _, found, _ := h.Store.Get(ctx, id); !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}

	png, err := qrcode.Encode(DeepLink(id), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// ListingFlyer renders a one-page PDF flyer for a listing with its deep-link
// QR code, for pinning up at the property itself.
func (h *Handler) ListingFlyer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("listingid")
	listing, found, err := h.Store.Get(ctx, id)
	if err != nil || !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}

	qrPNG, err := qrcode.Encode(DeepLink(id), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	availability := "Occupied"
	if listing.Available {
		availability = "Available"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, listing.Name)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Type: %s (%s)", listing.Type, listing.Category))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Rent: INR %d / month", listing.Rent))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Address: %s", listing.Location.Address))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", availability))
	pdf.Ln(8)
	if len(listing.Amenities) > 0 {
		pdf.MultiCell(0, 8, fmt.Sprintf("Amenities: %s", strings.Join(listing.Amenities, ", ")), "", "L", false)
	}
	pdf.Ln(4)
	pdf.Cell(0, 8, fmt.Sprintf("Contact: %s", listing.Contact))
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, "Scan to view this listing:")

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=flyer-"+id+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
