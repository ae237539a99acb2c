package dto

type SavedAddressResponse struct {
	AddressID int    `json:"address_id"`
	Address   string `json:"address"`
}

type ListAddressesResponse struct {
	Addresses []SavedAddressResponse `json:"addresses"`
}
