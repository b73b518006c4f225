// Package nxncube models an NxNxN twisty puzzle: its cubelets and stickers,
// layer rotations with per-cubelet locking, drag gesture resolution and the
// game around it (shuffle, move counter, clock and solved detection).
//
// # Features
//
//   - Any width from 2 upward
//   - Animated quarter turns that snap to the grid on commit
//   - Concurrent turns on disjoint layers
//   - Drag-to-turn resolution from two picked stickers
//   - Deterministic timing through a virtual-time event loop
//
// # Quick Start
//
// Everything runs on a loop the host advances from its frame handler:
//
//	l := loop.New(time.Now())
//	cube, err := nxncube.New(3, 20, nxncube.WithLoop(l))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cube.Dispose()
//
//	cube.OnMoveMade().Add(func(n int) {
//	    fmt.Println("Moves:", n)
//	})
//	cube.OnGameEnd().Add(func(struct{}) {
//	    fmt.Println("Solved in", cube.Elapsed())
//	})
//
//	cube.InitEvents()
//	cube.Shuffle()
//	for {
//	    l.Advance(16 * time.Millisecond)
//	    // draw cube.Cubelets() ...
//	}
//
// # Turns
//
// A turn names an axis, a layer index along it and a direction:
//
//	cube.Rotate(nxncube.Yaw, 1, true)
//
//	turns, _ := nxncube.ParseTurns("x0 y1' z2")
//	for _, t := range turns {
//	    cube.Begin(t, 1)
//	}
//
// # Games
//
// Game owns the current cube and rebuilds it on request, disposing the old
// one first so no timer outlives its cube:
//
//	g := nxncube.NewGame(nxncube.WithLoop(l))
//	g.OnCubeCreated().Add(func(c *nxncube.Cube) { bind(c) })
//	g.New(4, 30)
package nxncube
