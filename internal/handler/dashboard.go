package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/tripwise/tripwise/internal/auth"
)

// chatPage is the minimal planner page. The fetch call stays same-origin
// and rides the session cookie.
const chatPage = `<!DOCTYPE html>
<html>
<head><title>Tripwise Planner</title></head>
<body>
<h2>AI Travel Planner</h2>
<textarea id="message" rows="4" cols="60" placeholder="e.g. 3 day trip to Paris"></textarea><br/>
<button onclick="plan()">Plan my trip</button>
<pre id="reply"></pre>
<a href="/dashboard">Back to dashboard</a>
<script>
async function plan() {
    const message = document.getElementById("message").value;
    const res = await fetch("/ai-chat", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ message })
    });
    const data = await res.json();
    document.getElementById("reply").textContent = data.reply;
}
</script>
</body>
</html>`

// Dashboard serves the personalized dashboard page.
// GET /dashboard - the session gate guarantees an authenticated session.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Tripwise</title></head>
<body>
<h2>Welcome %s</h2>
<a href="/chat">Open AI Travel Planner</a><br/><br/>
<a href="/logout">Logout</a>
</body>
</html>`, html.EscapeString(session.Name))

	writeHTML(w, http.StatusOK, page)
}

// Chat serves the planner page.
// GET /chat - session-gated like the dashboard.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, chatPage)
}
