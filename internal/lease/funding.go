package lease

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/concierge-pm/api/internal/leasefunder"
	"github.com/concierge-pm/api/internal/revenueevent"
)

type fundingResponse struct {
	Lease   *Lease `json:"lease"`
	Message string `json:"message"`
}

// CreateWithFunding handles POST /api/leases-with-funding. It persists the
// lease, one lease-funder row per entry, and one revenue event per calendar
// month of the term per funder, all in a single transaction. A funder's
// amount is a monthly rate: it is copied verbatim into every month's event,
// not divided by the month count.
func (h *Handler) CreateWithFunding(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// 1) decode and validate everything before touching the database
	var dto LeaseWithFundingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l, err := dto.Lease.ToModel()
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid lease data")
		return
	}
	for _, entry := range dto.Funders {
		if err := entry.Validate(); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid funder entry")
			return
		}
	}

	// 2) open the transaction
	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		respondMessage(w, http.StatusInternalServerError, "could not start transaction")
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			respondMessage(w, http.StatusInternalServerError, "internal failure")
		}
	}()

	// 3) persist the lease
	if err := tx.Create(l).Error; err != nil {
		_ = tx.Rollback()
		respondMessage(w, http.StatusBadRequest, "failed to create lease")
		return
	}

	// 4) persist one funding row per entry, caller order, no dedup
	funders := make([]*leasefunder.LeaseFunder, 0, len(dto.Funders))
	for _, entry := range dto.Funders {
		funders = append(funders, &leasefunder.LeaseFunder{
			LeaseID:  l.ID,
			FunderID: entry.FunderID,
			Amount:   *entry.Amount,
		})
	}
	if err := leasefunder.NewRepository(tx).CreateInBatch(funders); err != nil {
		_ = tx.Rollback()
		respondMessage(w, http.StatusBadRequest, "failed to create lease funders")
		return
	}

	// 5) expand the term into months and emit funder × month events
	months := monthsOf(l.StartDate, l.EndDate)
	events := make([]*revenueevent.RevenueEvent, 0, len(months)*len(funders))
	for _, month := range months {
		for _, lf := range funders {
			events = append(events, &revenueevent.RevenueEvent{
				LeaseID:   l.ID,
				FunderID:  lf.FunderID,
				Amount:    lf.Amount,
				EventDate: month,
				Month:     month.Format("2006-01"),
			})
		}
	}
	if err := revenueevent.NewRepository(tx).CreateInBatch(events); err != nil {
		_ = tx.Rollback()
		respondMessage(w, http.StatusBadRequest, "failed to create revenue events")
		return
	}

	// 6) commit and respond
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		respondMessage(w, http.StatusInternalServerError, "failed to commit transaction")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fundingResponse{
		Lease:   l,
		Message: "Lease created with funding and revenue events generated",
	})
}

// monthsOf returns the first day of every calendar month in the closed
// interval [start, end], normalized to month granularity. A lease that starts
// and ends in the same month yields one entry; partial boundary months count
// in full. A start after the end yields nothing.
func monthsOf(start, end time.Time) []time.Time {
	var months []time.Time
	current := firstOfMonth(start)
	last := firstOfMonth(end)
	for !current.After(last) {
		months = append(months, current)
		current = current.AddDate(0, 1, 0)
	}
	return months
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
