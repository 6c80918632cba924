package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UIHandler serves the single-page chat widget.
func (h *APIHandler) UIHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(chatPage))
}

const chatPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>AI Investment Helper</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 720px; margin: 24px auto; padding: 0 12px; }
  h2, .subtitle { text-align: center; margin: 4px 0; }
  #chat { height: 400px; overflow-y: auto; border: 1px solid #d0d4d9; border-radius: 12px; padding: 12px; margin: 16px 0; }
  .user { text-align: right; margin: 8px 0; }
  .user span { background: #d9ecff; border-radius: 10px; padding: 8px 12px; display: inline-block; }
  .bot { margin: 8px 0; }
  .bot .turn, .bot .error { background: #f8f9fa; border-radius: 10px; padding: 10px; display: inline-block; }
  .bot .error { background: #fdecea; }
  textarea { width: 100%; font-size: 16px; border-radius: 12px; padding: 8px; box-sizing: border-box; }
  button { font-size: 16px; border-radius: 50px; padding: 10px 18px; background: #f0f2f5; border: 1px solid #d0d4d9; cursor: pointer; }
  #submit { display: block; margin: 8px auto; }
  .topics { display: flex; gap: 8px; justify-content: center; flex-wrap: wrap; margin-top: 12px; }
  .reminder { background: #f4f4f5; border-radius: 12px; padding: 12px; margin-top: 24px; }
</style>
</head>
<body>
<h2>AI Investment Helper</h2>
<p class="subtitle">Ask one simple question to understand directions for funds and bonds</p>
<div id="chat"></div>
<textarea id="input" rows="2" placeholder="Type your investment question here..."></textarea>
<button id="submit">Submit</button>
<p style="text-align:center"><b>Not sure what to ask? Start with a topic:</b></p>
<div class="topics">
  <button data-topic="Funds">Funds</button>
  <button data-topic="Foreign Currency">Foreign Currency</button>
  <button data-topic="Bonds">Bonds</button>
  <button data-topic="Macro">What should I watch now?</button>
</div>
<div class="reminder">
  <b>Reminder:</b><br>
  This system is for educational purposes only and does not constitute financial advice.
  Please make decisions based on your own risk assessment.
</div>
<script>
const chat = document.getElementById("chat");
const input = document.getElementById("input");

function append(cls, html) {
  const div = document.createElement("div");
  div.className = cls;
  div.innerHTML = html;
  chat.appendChild(div);
  chat.scrollTop = chat.scrollHeight;
}

function escapeText(s) {
  const d = document.createElement("div");
  d.textContent = s;
  return d.innerHTML;
}

async function submitTurn() {
  const question = input.value.trim();
  if (!question) return;
  input.value = "";
  append("user", "<span>" + escapeText(question) + "</span>");
  append("bot", "<span class=\"turn\">Thinking…</span>");
  const placeholder = chat.lastChild;
  try {
    const resp = await fetch("/api/v1/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ question })
    });
    const data = await resp.json();
    if (!resp.ok) {
      const msg = (data.error && data.error.message) || "Something went wrong.";
      placeholder.innerHTML = "<span class=\"error\">" + escapeText(msg) + "</span>";
      return;
    }
    placeholder.innerHTML = data.html;
  } catch (err) {
    placeholder.innerHTML = "<span class=\"error\">" + escapeText(String(err)) + "</span>";
  }
}

document.getElementById("submit").addEventListener("click", submitTurn);
input.addEventListener("keydown", (e) => {
  if (e.key === "Enter" && !e.shiftKey) { e.preventDefault(); submitTurn(); }
});

document.querySelectorAll(".topics button").forEach((btn) => {
  btn.addEventListener("click", async () => {
    const resp = await fetch("/api/v1/topics/random?topic=" + encodeURIComponent(btn.dataset.topic));
    if (!resp.ok) return;
    const data = await resp.json();
    input.value = data.question;
    submitTurn();
  });
});
</script>
</body>
</html>
`
