package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/router"
)

// Screen identifiers - use typed constants for compile-time safety
type Screen int

const (
	ScreenGameList Screen = iota
	ScreenGameDetail
	ScreenSettings
)

// Routes that carry data key off one of their fields
type GameRoute struct {
	Screen Screen
	Name   string
}

// Example demonstrates a switch of screens confined to a main loop.
func Example() {
	loop := mainctx.NewLoop(mainctx.LoopOptions{Name: "ui"})
	if err := loop.Start(context.Background()); err != nil {
		panic(err)
	}

	screens := router.NewValueSwitch[Screen]().
		Handle(ScreenGameList, func(Screen) { fmt.Println("List: showing games") }).
		Handle(ScreenSettings, func(Screen) { fmt.Println("Settings: opened") })

	r := router.Confine[Screen](loop, screens)

	// Safe from any goroutine; runs on the loop in order
	r.Trigger(ScreenGameList)
	r.Trigger(ScreenSettings)

	_ = loop.Shutdown(context.Background())

	// Output:
	// List: showing games
	// Settings: opened
}

// Example_keyedRoutes demonstrates routes that carry a payload.
func Example_keyedRoutes() {
	games := router.NewSwitch(func(r GameRoute) Screen { return r.Screen }).
		Handle(ScreenGameDetail, func(r GameRoute) {
			fmt.Printf("Detail: showing %s\n", r.Name)
		}).
		Fallback(func(r GameRoute) {
			fmt.Printf("No screen %d\n", r.Screen)
		})

	games.Trigger(GameRoute{Screen: ScreenGameDetail, Name: "Portal"})
	games.Trigger(GameRoute{Screen: ScreenSettings})

	// Output:
	// Detail: showing Portal
	// No screen 2
}

// ExampleFunc demonstrates adapting a plain function.
func ExampleFunc() {
	var r router.Router[string] = router.Func[string](func(route string) {
		fmt.Println("navigate:", route)
	})

	r.Trigger("home")

	// Output:
	// navigate: home
}
