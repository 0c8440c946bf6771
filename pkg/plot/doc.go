// Package plot provides the render handle returned by every visualization
// operation.
//
// A [Plot] wraps an [engine.Ref]: a plot that has been built but not yet
// displayed. The caller owns it and decides what happens next:
//
//	p, err := viz.Scatter(ctx, x, y)
//	if err != nil {
//	    return err
//	}
//	if err := p.Show(ctx); err != nil { // opens the rendering client
//	    return err
//	}
//	if err := p.Save(ctx, "scatter.png"); err != nil {
//	    return err
//	}
//
// # Display Targets
//
// Where [Plot.Show] sends a plot is a process-wide setting, changed with
// [SetTarget]:
//
//   - "auto", "gui": launch the native rendering client ([Launcher])
//   - "browser": hand the plot to the displayer registered with
//     [RegisterBrowser], typically a viewer publisher
//   - "none": discard the plot
//
// [SetDisplayer] overrides the target with an arbitrary [Displayer].
//
// # Export
//
// [Plot.Export] produces "json" (the plot spec itself), "svg" (rendered by
// the client in headless mode), or "png" and "pdf" (converted from the SVG
// by the render package). When a cache is attached, exported artifacts are
// stored under the plot's content fingerprint.
package plot
