package payment

// Card は模擬決済フォームの入力を表す
// 実在のカード検証（Luhn等）は行わず、桁数の形式チェックのみ
type Card struct {
	Number string
	Expiry string // MM/YY 形式。形式チェックは行わない
	CVV    string
}

// Validate はカード入力の形式チェックを行う
func (c Card) Validate() error {
	if len(c.Number) < 16 {
		return ErrInvalidCardNumber
	}
	if len(c.CVV) < 3 {
		return ErrInvalidCVV
	}
	return nil
}
