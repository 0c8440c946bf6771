package viewer

import "html/template"

type viewData struct {
	Title string
	Kind  string
	ID    string
	Spec  any // marshaled and escaped by html/template
}

var viewTemplate = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; margin: 2rem; color: #1f2328; }
  h1 { font-size: 1.25rem; font-weight: 600; }
  .meta { color: #656d76; font-size: 0.85rem; }
  #plot { margin-top: 1rem; min-height: 480px; border: 1px solid #d0d7de; border-radius: 6px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Kind}} &middot; {{.ID}} &middot; <a href="/plots/{{.ID}}">spec</a></p>
<div id="plot" data-plot-id="{{.ID}}"></div>
<script id="plot-spec" type="application/json">{{.Spec}}</script>
<script>
  window.showviz = window.showviz || {};
  window.showviz.spec = JSON.parse(document.getElementById("plot-spec").textContent);
  if (window.showviz.render) { window.showviz.render(document.getElementById("plot"), window.showviz.spec); }
</script>
</body>
</html>
`))
