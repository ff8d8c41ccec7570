package shell

// pageTemplate renders the book chrome around one page body.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.PageTitle}} - {{.Title}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
<div id="body-container" class="light js {{.SidebarClass}}">
  <div id="sidebar-wrapper">
    {{.Sidebar}}
  </div>

  <div id="page-wrapper" class="page-wrapper">
    <div class="page">
      <div id="menu-bar" class="menu-bar">
        <div class="left-buttons">
          <form method="post" action="/sidebar/toggle" class="sidebar-toggle-form">
            <button id="sidebar-toggle" class="icon-button" type="submit" title="Toggle Table of Contents" aria-label="Toggle Table of Contents" aria-controls="sidebar">
              <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
                <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
              </svg>
            </button>
          </form>
        </div>
        <h1 class="menu-title">{{.Title}}</h1>
      </div>

      <div id="content" class="content">
        <main>
{{- if .NotFound}}
          <h1>Page not found</h1>
          <p>Nothing lives at <code>{{.Path}}</code>. Pick a chapter from the table of contents.</p>
{{- else if .Page}}
          <h1>{{.Page.Title}}</h1>
          {{.Page.Intro}}
  {{- range .Page.Forms}}
          <section class="exercise" id="form-{{.ID}}">
            {{with .Heading}}<h2>{{.}}</h2>{{end}}
            <form method="post" action="{{$.Path}}#form-{{.ID}}">
              <input type="hidden" name="form" value="{{.ID}}">
    {{- if .Multiline}}
              <textarea name="value" rows="6" placeholder="{{.Placeholder}}" required>{{index $.Values .ID}}</textarea>
    {{- else}}
              <input type="text" name="value" placeholder="{{.Placeholder}}" value="{{index $.Values .ID}}"{{if .Numeric}} inputmode="numeric" pattern="[0-9]*"{{end}}{{if gt .MinLength 0}} minlength="{{.MinLength}}"{{end}}{{if gt .MaxLength 0}} maxlength="{{.MaxLength}}"{{end}} required>
    {{- end}}
              <button type="submit">{{.Button}}</button>
              <a class="button clear" href="{{$.Path}}#form-{{.ID}}">Clear</a>
            </form>
    {{- with index $.Results .ID}}
      {{- if .IsTable}}
            <table class="result">
              <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
              <tbody>
              {{- range .Rows}}
                <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
              {{- end}}
              </tbody>
            </table>
      {{- else}}
            <p class="result{{if .Failed}} failed{{end}}">{{.Text}}</p>
      {{- end}}
    {{- end}}
          </section>
  {{- end}}
{{- else}}
          <h1>{{.PageTitle}}</h1>
          <p>This chapter has no content yet.</p>
{{- end}}
        </main>

        <nav class="nav-wrapper" aria-label="Page navigation">
{{- with .Pager.Prev}}
          <a rel="prev" href="{{.Path}}" class="mobile-nav-chapters previous" title="{{.Title}}" aria-label="Previous chapter">&larr;</a>
{{- end}}
{{- with .Pager.Next}}
          <a rel="next" href="{{.Path}}" class="mobile-nav-chapters next" title="{{.Title}}" aria-label="Next chapter">&rarr;</a>
{{- end}}
          <div style="clear: both"></div>
        </nav>
      </div>
    </div>

    <nav class="nav-wide-wrapper" aria-label="Page navigation">
{{- with .Pager.Prev}}
      <a rel="prev" href="{{.Path}}" class="nav-chapters previous" title="{{.Title}}" aria-label="Previous chapter">&larr;</a>
{{- end}}
{{- with .Pager.Next}}
      <a rel="next" href="{{.Path}}" class="nav-chapters next" title="{{.Title}}" aria-label="Next chapter">&rarr;</a>
{{- end}}
    </nav>
  </div>
</div>
<script src="/static/script.js"></script>
</body>
</html>`

// cssContent styles the book chrome.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #333333;
  --sidebar-bg: #fafafa;
  --sidebar-fg: #364149;
  --sidebar-active: #008cff;
  --sidebar-width: 300px;
  --border: #e5e5e5;
  --menu-bar-height: 50px;
  --content-max-width: 750px;
  --links: #4183c4;
  --error: #c0392b;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: "Open Sans", sans-serif;
  color: var(--fg);
  background: var(--bg);
}

a { color: var(--links); text-decoration: none; }

/* Sidebar */
.sidebar {
  position: fixed;
  top: 0;
  bottom: 0;
  left: 0;
  width: var(--sidebar-width);
  background: var(--sidebar-bg);
  color: var(--sidebar-fg);
  font-size: 0.875em;
  overflow-y: auto;
  transition: transform 0.3s ease;
}
.sidebar-scrollbox { padding: 10px; }
.sidebar-hidden .sidebar { transform: translateX(calc(-1 * var(--sidebar-width))); }
.sidebar ol { list-style: none; margin: 0; padding: 0; }
.sidebar ol.section { padding-left: 20px; }
.chapter-item { margin-top: 0.6em; }
.chapter-item a { color: var(--sidebar-fg); display: block; }
.chapter-item a:hover, .chapter-item a.active { color: var(--sidebar-active); }

/* Page */
.page-wrapper {
  min-height: 100vh;
  transition: margin-left 0.3s ease;
}
.sidebar-visible .page-wrapper { margin-left: var(--sidebar-width); }

.page { position: relative; }

/* Header */
.menu-bar {
  position: relative;
  display: flex;
  align-items: center;
  height: var(--menu-bar-height);
  padding: 0 10px;
  background: var(--bg);
  z-index: 10;
}
.menu-bar.sticky { position: sticky; top: 0 !important; }
.menu-bar.bordered { border-bottom: 1px solid var(--border); }
.menu-title {
  flex: 1;
  margin: 0;
  font-size: 1.5em;
  font-weight: 200;
  text-align: center;
}
.sidebar-toggle-form { margin: 0; }
.icon-button {
  border: none;
  background: none;
  color: inherit;
  cursor: pointer;
  padding: 5px;
}

/* Content */
.content {
  padding: 0 15px;
  max-width: var(--content-max-width);
  margin: 0 auto;
}
.content pre { padding: 10px; overflow-x: auto; }

.exercise { margin: 2em 0; }
.exercise input[type="text"], .exercise textarea {
  width: 100%;
  padding: 8px;
  font-family: monospace;
  border: 1px solid var(--border);
}
.exercise button, .exercise a.button {
  display: inline-block;
  margin-top: 8px;
  padding: 6px 14px;
  cursor: pointer;
  font: inherit;
  color: var(--fg);
  background: var(--sidebar-bg);
  border: 1px solid var(--border);
}
.result { margin-top: 1em; font-family: monospace; }
.result.failed { color: var(--error); }
table.result { border-collapse: collapse; width: 100%; }
table.result th, table.result td { border: 1px solid var(--border); padding: 4px 8px; text-align: left; }

/* Pagination */
.nav-wrapper { display: none; margin-top: 50px; }
.mobile-nav-chapters {
  font-size: 2.5em;
  text-align: center;
  width: 90px;
  border-radius: 5px;
  background: var(--sidebar-bg);
}
.mobile-nav-chapters.previous { float: left; }
.mobile-nav-chapters.next { float: right; }

.nav-chapters {
  position: fixed;
  top: 50px;
  bottom: 0;
  display: flex;
  align-items: center;
  justify-content: center;
  width: 90px;
  font-size: 2.5em;
  color: var(--sidebar-fg);
}
.nav-chapters:hover { background: var(--sidebar-bg); }
.nav-chapters.previous { left: 0; }
.sidebar-visible .nav-chapters.previous { left: var(--sidebar-width); }
.nav-chapters.next { right: 15px; }

@media only screen and (max-width: 1080px) {
  .nav-wide-wrapper { display: none; }
  .nav-wrapper { display: block; }
}
@media only screen and (max-width: 620px) {
  .sidebar-visible .page-wrapper { margin-left: 0; }
}
`

// jsContent streams every scroll offset to the server and applies the header
// and sidebar state it sends back. Without a socket the toggle form posts
// normally and the server keeps the sidebar state in a cookie.
const jsContent = `(function() {
  var menuBar = document.getElementById('menu-bar');
  var container = document.getElementById('body-container');
  var wrapper = document.getElementById('sidebar-wrapper');
  var toggle = document.getElementById('sidebar-toggle');
  if (!menuBar || !container) return;

  var socket = null;

  function send(msg) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
      return true;
    }
    return false;
  }

  function offsets(type) {
    return { type: type, y: window.scrollY, height: menuBar.offsetHeight };
  }

  function applyHeader(msg) {
    if (msg.anchored) {
      menuBar.style.top = msg.top + 'px';
    }
    menuBar.classList.toggle('sticky', msg.pinned);
    menuBar.classList.toggle('bordered', msg.bordered);
  }

  function applySidebar(open) {
    document.cookie = 'cryptobook_sidebar=' + (open ? 'open' : 'closed') + '; path=/; SameSite=Lax';
    var add = open ? 'sidebar-visible' : 'sidebar-hidden';
    var remove = open ? 'sidebar-hidden' : 'sidebar-visible';
    container.classList.remove(remove);
    container.classList.add(add);
    var inner = wrapper && wrapper.firstElementChild;
    if (inner) {
      inner.classList.remove(remove);
      inner.classList.add(add);
    }
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(proto + location.host + '/ws/scroll');
    socket.onopen = function() { send(offsets('mount')); };
    socket.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === 'header') applyHeader(msg);
      else if (msg.type === 'sidebar') applySidebar(msg.open);
      else if (msg.type === 'error' && window.console) console.warn('scroll stream:', msg.message);
    };
    socket.onclose = function() { socket = null; };
  }

  window.addEventListener('scroll', function() {
    send(offsets('scroll'));
  }, { passive: true });

  if (toggle) {
    toggle.addEventListener('click', function(ev) {
      if (send({ type: 'toggle' })) ev.preventDefault();
    });
  }

  if (window.WebSocket) connect();
})();
`
