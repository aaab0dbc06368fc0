package domain

// Balance is the sender's coin balance. Current never goes negative.
type Balance struct {
	Current int64
	Sent    int64
}

// CanDebit reports ErrInsufficientBalance when amount exceeds the current balance.
func (b Balance) CanDebit(amount int64) error {
	if amount > b.Current {
		return ErrInsufficientBalance
	}
	return nil
}

func (b *Balance) Debit(amount int64) error {
	if err := b.CanDebit(amount); err != nil {
		return err
	}
	b.Current -= amount
	b.Sent += amount
	return nil
}
