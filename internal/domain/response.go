package domain

// Response is the uniform envelope returned by every public operation.
// On failure Data and List are always empty; Message is meant for the UI.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
	List    []T    `json:"list,omitempty"`
}

func Done[T any](message string) Response[T] {
	return Response[T]{Success: true, Message: message}
}

func DoneData[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

func DoneList[T any](message string, list []T) Response[T] {
	return Response[T]{Success: true, Message: message, List: list}
}

func Fail[T any](message string) Response[T] {
	return Response[T]{Success: false, Message: message}
}
