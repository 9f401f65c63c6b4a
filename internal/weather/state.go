package weather

// ViewState is the tri-state view model published by the Controller.
// Exactly one of Loading, Success or ErrorState is active at a time.
type ViewState interface {
	Kind() string
	isViewState()
}

const (
	KindLoading = "loading"
	KindSuccess = "success"
	KindError   = "error"
)

// Loading is published as soon as a request starts.
type Loading struct{}

// Success carries everything the presentation layer renders for a location.
type Success struct {
	Location      Location
	Current       CurrentConditions
	UpcomingHours []HourEntry
	Days          []DayForecast
}

// ErrorState carries a human-readable description of what went wrong.
type ErrorState struct {
	Message string
}

func (Loading) Kind() string    { return KindLoading }
func (Success) Kind() string    { return KindSuccess }
func (ErrorState) Kind() string { return KindError }

func (Loading) isViewState()    {}
func (Success) isViewState()    {}
func (ErrorState) isViewState() {}
