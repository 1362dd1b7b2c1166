package router

// Dashboard page. Server renders the initial slider bounds; everything
// after that is the client re-querying /api/chart and /api/ranges on
// slider input, latest input wins.
const tmplDashboard = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Ranking Algorithms Performance Dashboard</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
header{background:#161b22;border-bottom:1px solid #30363d;padding:12px 16px}
h1{font-size:16px;font-weight:700;color:#f0f6fc}
main{display:flex;gap:16px;padding:16px;align-items:flex-start;flex-wrap:wrap}
.sidebar{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;width:280px;flex-shrink:0}
.sidebar h2{font-size:12px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.05em;margin-bottom:12px}
.slider{margin-bottom:14px}
.slider label{display:block;font-size:11px;color:#8b949e;margin-bottom:4px}
.slider .val{color:#58a6ff;font-weight:600}
input[type=range]{width:100%;accent-color:#1f6feb}
.content{flex:1;min-width:480px}
.panel{background:#161b22;border:1px solid #30363d;border-radius:6px;margin-bottom:16px;overflow:hidden}
.panel-hdr{padding:8px 12px;border-bottom:1px solid #30363d;font-size:11px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.05em}
.panel-body{padding:12px}
.msg{display:none;padding:8px 12px;border-radius:6px;margin-bottom:16px;font-size:12px}
.msg.error{background:#f8717122;border:1px solid #f87171;color:#f87171}
.msg.warn{background:#f59e0b22;border:1px solid #f59e0b;color:#f59e0b}
.legend{display:flex;gap:12px;flex-wrap:wrap;padding:8px 12px;font-size:11px}
.legend .swatch{display:inline-block;width:10px;height:10px;border-radius:2px;margin-right:4px;vertical-align:middle}
svg text{fill:#8b949e;font-size:10px;font-family:inherit}
svg .axis{stroke:#30363d}
svg .grid{stroke:#21262d}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase}
td{padding:5px 10px;border-bottom:1px solid #21262d}
tr:hover td{background:#21262d}
details summary{cursor:pointer;padding:8px 12px;color:#8b949e;font-size:11px;font-weight:600;text-transform:uppercase;letter-spacing:.05em}
</style>
</head>
<body>
<header><h1>Ranking Algorithms Performance Dashboard</h1></header>
<main>
<div class="sidebar">
<h2>Filter Parameters</h2>
<div class="slider">
<label>Noise Level: <span class="val" id="noise-val"></span></label>
<input type="range" id="noise" min="{{.Ranges.Noise.Min}}" max="{{.Ranges.Noise.Max}}" step="{{.Ranges.Noise.Step}}" value="{{.Selection.NoiseLevel}}">
</div>
<div class="slider">
<label>Number of Items: <span class="val" id="items-val"></span></label>
<input type="range" id="items" min="{{.Ranges.Items.Min}}" max="{{.Ranges.Items.Max}}" step="{{.Ranges.Items.Step}}" value="{{.Selection.NumItems}}">
</div>
<div class="slider">
<label>Number of Pairs: <span class="val" id="pairs-val"></span></label>
<input type="range" id="pairs" min="{{.Ranges.Pairs.Min}}" max="{{.Ranges.Pairs.Max}}" step="{{.Ranges.Pairs.Step}}" value="{{.Selection.NumPairs}}">
</div>
</div>
<div class="content">
<div class="msg error" id="error"></div>
<div class="msg warn" id="warning"></div>
<div class="panel" id="chart-panel">
<div class="panel-hdr" id="chart-title">Top-n Accuracy</div>
<div class="legend" id="legend"></div>
<div class="panel-body"><svg id="chart" width="860" height="420"></svg></div>
</div>
<div class="panel">
<details>
<summary>Show Data</summary>
<table id="data-table"><thead>
<tr><th>Noise Level</th><th>Num_Items</th><th>Num_Pairs</th><th>Algorithm</th><th>Top-n</th><th>Accuracy</th></tr>
</thead><tbody></tbody></table>
</details>
</div>
</div>
</main>
<script>
const $ = id => document.getElementById(id);
const sliders = {noise: $('noise'), items: $('items'), pairs: $('pairs')};

function labels() {
	$('noise-val').textContent = Number(sliders.noise.value).toFixed(2);
	$('items-val').textContent = sliders.items.value;
	$('pairs-val').textContent = sliders.pairs.value;
}

function show(id, text) { const el = $(id); el.textContent = text; el.style.display = 'block'; }
function hide(id) { $(id).style.display = 'none'; }

async function refreshRanges() {
	const res = await fetch('/api/ranges?items=' + sliders.items.value);
	if (!res.ok) return;
	const r = await res.json();
	sliders.pairs.min = r.pairs.min;
	sliders.pairs.max = r.pairs.max;
	sliders.pairs.step = r.pairs.step;
	if (Number(sliders.pairs.value) > r.pairs.max) sliders.pairs.value = r.pairs.max;
}

function drawChart(chart) {
	const svg = $('chart'), W = 860, H = 420, pad = {l: 50, r: 20, t: 10, b: 40};
	const pts = chart.series.flatMap(s => s.points);
	const xs = pts.map(p => p.topN), ys = pts.map(p => p.accuracy);
	const xMin = Math.min(...xs), xMax = Math.max(...xs);
	const yMin = Math.min(...ys, 0), yMax = Math.max(...ys, 1);
	const sx = x => xMax === xMin ? (pad.l + (W - pad.l - pad.r) / 2) : pad.l + (x - xMin) / (xMax - xMin) * (W - pad.l - pad.r);
	const sy = y => H - pad.b - (y - yMin) / (yMax - yMin) * (H - pad.t - pad.b);
	let out = '';
	for (let i = 0; i <= 5; i++) {
		const y = yMin + (yMax - yMin) * i / 5, py = sy(y);
		out += '<line class="grid" x1="' + pad.l + '" y1="' + py + '" x2="' + (W - pad.r) + '" y2="' + py + '"/>';
		out += '<text x="' + (pad.l - 8) + '" y="' + (py + 3) + '" text-anchor="end">' + y.toFixed(2) + '</text>';
	}
	for (let i = 0; i <= 6; i++) {
		const x = xMin + (xMax - xMin) * i / 6, px = sx(x);
		out += '<text x="' + px + '" y="' + (H - pad.b + 16) + '" text-anchor="middle">' + Math.round(x) + '</text>';
	}
	out += '<line class="axis" x1="' + pad.l + '" y1="' + (H - pad.b) + '" x2="' + (W - pad.r) + '" y2="' + (H - pad.b) + '"/>';
	out += '<line class="axis" x1="' + pad.l + '" y1="' + pad.t + '" x2="' + pad.l + '" y2="' + (H - pad.b) + '"/>';
	out += '<text x="' + (W / 2) + '" y="' + (H - 6) + '" text-anchor="middle">' + chart.xAxis + '</text>';
	out += '<text x="14" y="' + (H / 2) + '" text-anchor="middle" transform="rotate(-90 14 ' + (H / 2) + ')">' + chart.yAxis + '</text>';
	for (const s of chart.series) {
		const path = s.points.map(p => sx(p.topN) + ',' + sy(p.accuracy)).join(' ');
		out += '<polyline fill="none" stroke="' + s.color + '" stroke-width="2" points="' + path + '"/>';
		for (const p of s.points) {
			out += '<circle cx="' + sx(p.topN) + '" cy="' + sy(p.accuracy) + '" r="4" fill="' + s.color + '"/>';
		}
	}
	svg.innerHTML = out;
	$('chart-title').textContent = chart.title;
	$('legend').innerHTML = chart.series.map(s =>
		'<span><span class="swatch" style="background:' + s.color + '"></span>' + s.name + '</span>').join('');
}

function fillTable(rows) {
	const body = $('data-table').querySelector('tbody');
	body.innerHTML = rows.map(r =>
		'<tr><td>' + r.noiseLevel.toFixed(2) + '</td><td>' + r.numItems + '</td><td>' + r.numPairs +
		'</td><td>' + r.algorithm + '</td><td>' + r.topN + '</td><td>' + r.accuracy + '</td></tr>').join('');
}

let inflight = 0;
async function refresh() {
	labels();
	const seq = ++inflight;
	const q = '?noise=' + sliders.noise.value + '&items=' + sliders.items.value + '&pairs=' + sliders.pairs.value;
	const res = await fetch('/api/chart' + q);
	if (seq !== inflight) return; // a newer interaction superseded this one
	hide('error'); hide('warning');
	if (res.status === 400) {
		const body = await res.json();
		show('error', body.error);
		$('chart-panel').style.opacity = 0.3;
		return;
	}
	if (res.status === 422) {
		const body = await res.json();
		show('warning', body.warning);
		$('chart-panel').style.opacity = 0.3;
		return;
	}
	if (!res.ok) { show('error', 'request failed'); return; }
	$('chart-panel').style.opacity = 1;
	const chart = await res.json();
	drawChart(chart);
	fillTable(chart.rows);
}

sliders.noise.addEventListener('input', refresh);
sliders.pairs.addEventListener('input', refresh);
sliders.items.addEventListener('input', async () => { await refreshRanges(); refresh(); });

labels();
refresh();
</script>
</body>
</html>
`
