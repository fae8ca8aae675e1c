package catalog

// Samples returns the programs bundled with the gallery.
func Samples() []Program {
	return []Program{
		{
			ID:          "p1",
			Title:       "Hello World (HTML)",
			Description: "A simple HTML document demonstrating structure.",
			Lang:        "HTML",
			Code: `<!doctype html>
<html>
  <head><meta charset="utf-8"><title>Hello</title></head>
  <body><h1>Hello, world!</h1></body>
</html>`,
		},
		{
			ID:          "p2",
			Title:       "Counter (JS)",
			Description: "A tiny JavaScript counter example.",
			Lang:        "JavaScript",
			Code: `let count = 0;
function increment(){
  count++;
  console.log('Count:', count);
}
increment();`,
		},
		{
			ID:          "p3",
			Title:       "Styles Example (CSS)",
			Description: "A small CSS snippet for a card.",
			Lang:        "CSS",
			Code: `.card{
  background:#fff;
  border-radius:12px;
  padding:16px;
  box-shadow:0 6px 18px rgba(0,0,0,0.06);
}`,
		},
	}
}
