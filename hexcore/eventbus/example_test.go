package eventbus_test

import (
	"context"
	"fmt"

	"github.com/hexforge/lib-hexcore/hexcore/eventbus"
	"github.com/hexforge/lib-hexcore/hexcore/unitofwork"
)

type userRegistered struct {
	Email string
}

func (userRegistered) EventName() string { return "user.registered" }

// A use-case composes the unit of work and the event bus: mutations are
// tracked transactionally, and domain events are published only after the
// transaction committed.
func Example() {
	uow := unitofwork.NewInMemory()

	bus, err := eventbus.NewInMemoryBus(nil, nil)
	if err != nil {
		fmt.Println("err:", err)

		return
	}

	bus.Subscribe(userRegistered{}, func(_ context.Context, event any) error {
		registered := event.(userRegistered)
		fmt.Println("welcome mail queued for", registered.Email)

		return nil
	})

	ctx := context.Background()

	type user struct{ Email string }

	account := &user{Email: "ada@example.com"}

	err = uow.WithTransaction(ctx, func(_ context.Context) error {
		return uow.RegisterNew(account)
	})
	if err != nil {
		fmt.Println("err:", err)

		return
	}

	if err := bus.Publish(ctx, userRegistered{Email: account.Email}); err != nil {
		fmt.Println("err:", err)

		return
	}

	// Output:
	// welcome mail queued for ada@example.com
}

func ExampleInMemoryBus_PublishReport() {
	bus, err := eventbus.NewInMemoryBus(nil, nil)
	if err != nil {
		fmt.Println("err:", err)

		return
	}

	bus.Subscribe("invoice.settled", func(_ context.Context, _ any) error {
		return fmt.Errorf("audit sink unavailable")
	})

	envelope, err := eventbus.NewEnvelope("invoice.settled", map[string]string{"invoice": "inv-1"})
	if err != nil {
		fmt.Println("err:", err)

		return
	}

	report, err := bus.PublishReport(context.Background(), envelope)
	fmt.Println("publish err:", err)
	fmt.Println("aggregate:", report.Err())

	// Output:
	// publish err: <nil>
	// aggregate: event "invoice.settled": 1 of 1 handlers failed
}
