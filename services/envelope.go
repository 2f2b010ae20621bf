package services

// Envelope is the result shape every service operation returns. Failures
// inside a service are converted into it instead of being propagated.
type Envelope struct {
	Ok    bool
	Error string
}

func ok() Envelope {
	return Envelope{Ok: true}
}

func fail(msg string) Envelope {
	return Envelope{Error: msg}
}
