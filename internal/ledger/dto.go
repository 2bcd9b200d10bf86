package ledger

import "encoding/json"

// ScriptInput is the minimal body every ledger proxy call carries: the target
// endpoint travels with the request, not in server configuration.
type ScriptInput struct {
	ScriptURL string `json:"scriptUrl"`
}

// TransactionInput covers add and edit. Amount stays raw so a client may send
// it as a number or a formatted string; image fields pass through opaquely and
// are handled entirely by the remote script.
type TransactionInput struct {
	ScriptURL   string          `json:"scriptUrl"`
	RowIndex    int             `json:"rowIndex"`
	Amount      json.RawMessage `json:"amount"`
	Description string          `json:"description"`
	ImageBase64 string          `json:"imageBase64"`
	MimeType    string          `json:"mimeType"`
}

type DeleteTransactionInput struct {
	ScriptURL string `json:"scriptUrl"`
	RowIndex  int    `json:"rowIndex"`
}
