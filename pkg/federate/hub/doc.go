// Package hub groups federate registries by topic.
//
// # Basic Usage
//
// A Hub creates registries lazily through a factory:
//
//	events := hub.New(func(topic string) *federate.Tracked[Event, federate.Unit] {
//	    return federate.NewTracked[Event, federate.Unit](
//	        federate.WithName(topic),
//	        federate.WithThreadSafe(),
//	    )
//	})
//
//	tracker := events.Topic("order.created").Register(federate.Action(onOrder))
//	events.Topic("order.created").Notify(ctx, evt)
//
// Topic is atomic: the factory is called at most once per key, even under
// concurrent access.
//
// # Maintenance
//
// GarbageSize and Clean fan out to every topic. Prune drops topics whose
// registry is empty. Sweep runs Clean on a ticker until its context ends:
//
//	go events.Sweep(ctx, 30*time.Second)
package hub
