package domain

// A delivery address stored in the service's address book.
// Saved addresses are the default work set for a savings run when the
// request does not carry its own address list.
type SavedAddress struct {
	AddressID int
	Address   string
}
