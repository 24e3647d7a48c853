package handler

import "github.com/beautiflow/dashboard-api/internal/core/domain"

func toClientResponse(c domain.Client) clientResponse {
	return clientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		FlatNumber: c.FlatNumber,
		TrustScore: c.TrustScore,
		Tags:       c.Tags,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt.UTC(),
	}
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		ClientID:    t.ClientID,
		ClientName:  t.ClientName,
		ServiceName: t.ServiceName,
		Amount:      t.Amount,
		IsPaid:      t.IsPaid,
		DueDate:     t.DueDate,
		PaidAt:      t.PaidAt,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

func toTransactionsResponse(txs []domain.Transaction) listTransactionsResponse {
	out := make([]transactionResponse, len(txs))
	for i, t := range txs {
		out[i] = toTransactionResponse(t)
	}
	return listTransactionsResponse{Data: out}
}
