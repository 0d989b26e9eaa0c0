package router

// Route is a navigable destination or action. It has no required methods;
// the route type of a Router is whatever type the application chooses.
type Route = any

// Router is triggered with routes of type R.
//
// Implementations must be safe to share between goroutines. The body of
// Trigger must only run on the designated context; see Confine.
type Router[R Route] interface {
	Trigger(route R)
}

// Func adapts an ordinary function to a Router.
type Func[R Route] func(route R)

// Trigger calls f(route).
func (f Func[R]) Trigger(route R) {
	f(route)
}
