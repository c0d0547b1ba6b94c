package request

// DepositRequest is the canonical deposit payload. Amount may be omitted
// when ProviderPaymentID is set: the verified provider amount wins anyway.
// Total 0 means "keep the total already owed on the ledger row".

type DepositRequest struct {
	ClientName        string  `json:"client_name"`
	Phone             string  `json:"phone"`
	Detail            string  `json:"detail"`
	Total             float64 `json:"total"`
	Amount            float64 `json:"amount"`
	ProviderPaymentID string  `json:"provider_payment_id"`
}

func (r *DepositRequest) UnmarshalJSON(data []byte) error {
	fields, err := newAliasFields(data)
	if err != nil {
		return err
	}

	r.ClientName = fields.text("client_name", "nombre", "name")
	r.Phone = fields.text("phone", "celular", "telefono")
	r.Detail = fields.text("detail", "detalle", "ambientes")
	r.Total = fields.number("total", "total_cotizado")
	r.Amount = fields.number("amount", "monto", "monto_pagado", "deposito")
	r.ProviderPaymentID = fields.text("provider_payment_id", "payment_id", "mp_payment_id")
	return nil
}

func (r DepositRequest) Validate() error {
	if r.ClientName == "" {
		return ErrMissingClientName
	}
	return nil
}
