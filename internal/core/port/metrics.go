package port

type Metrics interface {
	ObserveLookup(outcome string)
	ObserveSend(coins int64)
	SetBalance(coins int64)
}
