package handlers

import (
	"fleet-savings-service/internal/api/dto"
	"fleet-savings-service/internal/ports"
	"log"
	"net/http"
)

// AddressHandler exposes read-only access to the saved address book.
type AddressHandler struct {
	Repo ports.AddressRepository
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	addrs, err := h.Repo.ListAddresses(r.Context())
	if err != nil {
		log.Printf("list addresses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAddressesResponse{
		Addresses: make([]dto.SavedAddressResponse, 0, len(addrs)),
	}
	for _, a := range addrs {
		res.Addresses = append(res.Addresses, dto.SavedAddressResponse{
			AddressID: a.AddressID,
			Address:   a.Address,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
