package chat

import "errors"

// ErrSessionNotFound means the session id is unknown or its TTL expired.
var ErrSessionNotFound = errors.New("chat session not found")

// ErrBusy means an assistant reply is already in flight for this session.
// Only one completion call runs per conversation at a time.
var ErrBusy = errors.New("a reply is already being generated for this session")

// ErrPaymentInFlight means a new booking or quote tried to replace a flow
// whose Paymob order has not been confirmed or abandoned yet.
var ErrPaymentInFlight = errors.New("a payment is awaiting confirmation for this session")

// ErrEmptyMessage means a send carried neither text nor an image.
var ErrEmptyMessage = errors.New("message must contain text or an image")

// ErrWidgetNotOpen means a widget operation arrived while that widget was
// not the active one.
var ErrWidgetNotOpen = errors.New("the requested widget is not open")

// ErrRatingUnset means a rating was submitted with zero stars.
var ErrRatingUnset = errors.New("a star rating of 1 to 5 is required")

// ErrUnknownAction means the quick-action name is not recognized.
var ErrUnknownAction = errors.New("unknown quick action")
