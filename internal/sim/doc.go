// Package sim drives a [life.Field] over time.
//
//   - [App]: the interactive loop. Start, Stop and ToggleState compose freely;
//     ticks are paced by an injected [Scheduler] and [Clock].
//   - [EventLoop]: a single-goroutine host queue implementing [Scheduler].
//   - [Simulator]: unpaced batch runs with metrics and cycle detection.
//   - [Ensemble]: one configuration over many starting fields, in turn.
//
// # Example
//
//	loop := sim.NewEventLoop()
//	app := sim.NewApp(field, loop, sim.WithTicksPerSecond(2))
//	app.AddObserver(renderer)
//	loop.Post(app.Start)
//	_ = loop.Run(ctx)
//
// # Thread Safety
//
// App is NOT thread-safe. Call it only from the scheduler's thread; from
// elsewhere, hand work to the loop with [EventLoop.Post].
package sim
