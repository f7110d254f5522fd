package usecase

import "context"

// UseCase is an application use case taking input I and producing
// output O. One invocation per submitted request, no hidden state.
type UseCase[I any, O any] interface {
	Execute(ctx context.Context, in *I) (*O, error)
}
