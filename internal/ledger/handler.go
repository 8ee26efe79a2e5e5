package ledger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/veewell/veewell-erp/internal/shared"
)

// Handler wires the ledger store onto HTTP.
type Handler struct {
	logger    *slog.Logger
	store     *Store
	validator *validator.Validate
}

// NewHandler constructs the ledger handler.
func NewHandler(logger *slog.Logger, store *Store) *Handler {
	return &Handler{logger: logger, store: store, validator: validator.New()}
}

// MountRoutes registers every ledger route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Post("/", h.createItem)
		r.Put("/{id}", h.updateItem)
	})
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Post("/", h.createAccount)
		r.Put("/{id}", h.updateAccount)
		r.Delete("/{id}", h.deleteAccount)
	})
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.listInvoices)
		r.Get("/next-number", h.nextInvoiceNo)
		r.Post("/", h.createInvoice)
		r.Put("/{id}", h.updateInvoice)
		r.Delete("/{id}", h.deleteInvoice)
	})
	r.Route("/vouchers", func(r chi.Router) {
		r.Get("/", h.listVouchers)
		r.Get("/next-number", h.nextVoucherNo)
		r.Post("/", h.createVoucher)
		r.Put("/{id}", h.updateVoucher)
		r.Delete("/{id}", h.deleteVoucher)
	})
	r.Route("/boms", func(r chi.Router) {
		r.Get("/", h.listBOMs)
		r.Post("/", h.createBOM)
		r.Post("/{id}/produce", h.produce)
	})
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.getSettings)
		r.Put("/", h.updateSettings)
	})
	r.Route("/backup", func(r chi.Router) {
		r.Get("/export", h.export)
		r.Post("/import", h.importData)
	})
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		shared.RespondErrorStatus(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, ErrInsufficientStock):
		shared.RespondErrorStatus(w, http.StatusConflict, err)
	case errors.Is(err, ErrMalformedImport):
		shared.RespondErrorStatus(w, http.StatusBadRequest, err)
	case errors.Is(err, ErrNotFound):
		shared.RespondErrorStatus(w, http.StatusNotFound, err)
	default:
		shared.RespondErrorStatus(w, http.StatusInternalServerError, err)
	}
}

func (h *Handler) decodeValid(r *http.Request, dst any) error {
	if err := shared.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.Items())
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	item, err := h.store.AddItem(r.Context(), req.toDomain(""))
	if err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("item created", slog.String("id", item.ID), slog.String("code", item.Code))
	shared.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	item, err := h.store.UpdateItem(r.Context(), req.toDomain(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.Accounts())
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	acc, err := h.store.AddAccount(r.Context(), req.toDomain(""))
	if err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("account created", slog.String("id", acc.ID), slog.String("type", string(acc.Type)))
	shared.RespondJSON(w, http.StatusCreated, acc)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	acc, err := h.store.UpdateAccount(r.Context(), req.toDomain(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, acc)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	invoices := h.store.Invoices()
	if t := r.URL.Query().Get("type"); t != "" {
		filtered := invoices[:0]
		for _, inv := range invoices {
			if inv.Type == InvoiceType(t) {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}
	shared.RespondJSON(w, http.StatusOK, invoices)
}

func (h *Handler) nextInvoiceNo(w http.ResponseWriter, r *http.Request) {
	invType := InvoiceType(r.URL.Query().Get("type"))
	if invType == "" {
		invType = InvoiceTypeSales
	}
	shared.RespondJSON(w, http.StatusOK, map[string]string{"invoiceNo": h.store.NextInvoiceNo(invType)})
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	inv, err := h.store.PostInvoice(r.Context(), req.toDomain(""))
	if err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("invoice posted",
		slog.String("id", inv.ID),
		slog.String("type", string(inv.Type)),
		slog.Float64("total", inv.Total))
	shared.RespondJSON(w, http.StatusCreated, inv)
}

func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	inv, err := h.store.UpdateInvoice(r.Context(), req.toDomain(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, inv)
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listVouchers(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.Vouchers())
}

func (h *Handler) nextVoucherNo(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, map[string]string{"vchNo": h.store.NextVoucherNo()})
}

func (h *Handler) createVoucher(w http.ResponseWriter, r *http.Request) {
	var req voucherRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	vch, err := h.store.PostVoucher(r.Context(), req.toDomain(""))
	if err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("voucher posted", slog.String("id", vch.ID), slog.Float64("amount", vch.Amount))
	shared.RespondJSON(w, http.StatusCreated, vch)
}

func (h *Handler) updateVoucher(w http.ResponseWriter, r *http.Request) {
	var req voucherRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	vch, err := h.store.UpdateVoucher(r.Context(), req.toDomain(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, vch)
}

func (h *Handler) deleteVoucher(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteVoucher(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBOMs(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.BOMs())
}

func (h *Handler) createBOM(w http.ResponseWriter, r *http.Request) {
	var req bomRequest
	if err := h.decodeValid(r, &req); err != nil {
		respondError(w, err)
		return
	}
	bom, err := h.store.AddBOM(r.Context(), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, bom)
}

func (h *Handler) produce(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Produce(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("production run complete", slog.String("bom_id", id))
	shared.RespondJSON(w, http.StatusOK, map[string]string{"status": "produced"})
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.store.Settings())
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings CompanySettings
	if err := shared.DecodeJSON(r, &settings); err != nil {
		respondError(w, fmt.Errorf("%w: %v", ErrValidation, err))
		return
	}
	if err := h.store.UpdateSettings(r.Context(), settings); err != nil {
		respondError(w, err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, settings)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	blob, err := h.store.Export()
	if err != nil {
		respondError(w, err)
		return
	}
	filename := fmt.Sprintf("veewell_backup_%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(blob)
}

func (h *Handler) importData(w http.ResponseWriter, r *http.Request) {
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", ErrMalformedImport, err))
		return
	}
	if err := h.store.Import(r.Context(), blob); err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("data import applied", slog.Int("bytes", len(blob)))
	shared.RespondJSON(w, http.StatusOK, map[string]bool{"imported": true})
}
