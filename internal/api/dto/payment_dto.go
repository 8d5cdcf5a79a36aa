package dto

// PaymentRequest is the card form collected by the payment stub.
type PaymentRequest struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// PaymentResponse confirms the stubbed authorization.
type PaymentResponse struct {
	Reference string `json:"reference"`
	Approved  bool   `json:"approved"`
}
