package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/comandas/comanda"
	"github.com/ray-remotestate/comandas/database"
	"github.com/ray-remotestate/comandas/database/dbhelper"
	"github.com/ray-remotestate/comandas/models"
)

// ListComandas returns every comanda. Optional query params narrow the
// result server-side: ?status=ABERTA (matched after normalization) and
// ?date=2024-03-05 (local calendar day).
func ListComandas(w http.ResponseWriter, r *http.Request) {
	comandas, err := dbhelper.ListComandas()
	if err != nil {
		logrus.Printf("failed to list comandas, error: %v", err)
		http.Error(w, "failed to query comandas", http.StatusInternalServerError)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		want := comanda.Normalize(status)
		filtered := make([]models.Comanda, 0, len(comandas))
		for _, c := range comandas {
			if comanda.Normalize(string(c.Status)) == want {
				filtered = append(filtered, c)
			}
		}
		comandas = filtered
	}

	if date := r.URL.Query().Get("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		comandas = comanda.Filter(comandas, comanda.CategoryAll, &day)
	}

	if comandas == nil {
		comandas = []models.Comanda{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comandas)
}

// GetComanda returns one comanda with its pedidos and a total recomputed
// from quantity × unit price, never from the stored subtotals.
func GetComanda(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid comanda ID", http.StatusBadRequest)
		return
	}

	c, err := dbhelper.GetComandaByID(id)
	if err == sql.ErrNoRows {
		http.Error(w, "comanda not found", http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Printf("failed to fetch comanda %d, error: %v", id, err)
		http.Error(w, "failed to fetch comanda", http.StatusInternalServerError)
		return
	}

	valuation := comanda.Calculate(*c)
	for _, s := range valuation.Skipped {
		logrus.Warnf("pedido %s of comanda %d excluded from total: %s (quantidade=%q, precoUnitario=%q)",
			s.PedidoID, c.ID, s.Reason, s.Quantity, s.UnitPrice)
	}

	type response struct {
		models.Comanda
		Total decimal.Decimal `json:"total"`
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Comanda: *c, Total: valuation.Total})
}

// CreateComanda opens a new comanda from {numero, status}. Numero arrives as
// a string and must parse to a positive integer; status must be one of the
// known lifecycle values.
func CreateComanda(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Numero string        `json:"numero"`
		Status models.Status `json:"status"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	numero, err := strconv.Atoi(req.Numero)
	if err != nil || numero <= 0 {
		http.Error(w, "numero must be a positive number", http.StatusBadRequest)
		return
	}
	if !req.Status.IsValid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	var id int
	txErr := database.Tx(func(tx *sql.Tx) error {
		id, err = dbhelper.CreateComanda(tx, numero, req.Status)
		return err
	})
	if txErr != nil {
		logrus.Printf("failed to create comanda, error: %v", txErr)
		http.Error(w, "failed to create comanda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":    "Comanda created",
		"comanda_id": id,
	})
}
