package templates

const stylesheet = `
:root{--bg:#f8fafc;--card:#fff;--fg:#0f172a;--muted:#64748b;--border:#e2e8f0;--primary:#2563eb;--success:#16a34a;--destructive:#dc2626;--secondary:#f1f5f9}
.dark{--bg:#020617;--card:#0f172a;--fg:#f8fafc;--muted:#94a3b8;--border:#1e293b;--primary:#3b82f6;--secondary:#1e293b}
*{box-sizing:border-box}body{margin:0;font-family:system-ui,sans-serif;background:var(--bg);color:var(--fg)}
.shell{display:flex;min-height:100vh}.main{flex:1;min-width:0}
.sidebar{width:16rem;padding:1rem;background:var(--card);border-right:1px solid var(--border)}
.sidebar.collapsed{width:4rem}.sidebar nav{display:flex;flex-direction:column;gap:.5rem;margin-top:1rem}
.header{display:flex;justify-content:space-between;align-items:center;padding:1rem 1.5rem;background:var(--card);border-bottom:1px solid var(--border)}
.brand{margin:0;font-size:1.5rem;color:var(--primary)}.content{padding:1.5rem;display:flex;flex-direction:column;gap:1.5rem}
.grid{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fit,minmax(24rem,1fr))}
.card{background:var(--card);border:1px solid var(--border);border-radius:.5rem;padding:1.5rem}
.card-header h2{margin:0 0 .25rem}.stack{display:flex;flex-direction:column;gap:1rem}
.row{display:flex;align-items:center;gap:.5rem}.between{justify-content:space-between}.grow{flex:1;min-width:0}
.request{display:flex;align-items:center;gap:1rem;padding:1rem;border:1px solid var(--border);border-radius:.5rem}
.avatar{display:inline-flex;width:3rem;height:3rem;border-radius:50%;background:var(--secondary);align-items:center;justify-content:center;overflow:hidden}
.avatar img{width:100%;height:100%;object-fit:cover}.thumb{width:4rem;height:3rem;object-fit:cover;border:1px solid var(--border);border-radius:.25rem}
.muted{color:var(--muted)}.small{font-size:.875rem}.xsmall{font-size:.75rem}.strong{font-weight:600}
.truncate{overflow:hidden;text-overflow:ellipsis;white-space:nowrap}
.badge{display:inline-block;padding:.1rem .5rem;border-radius:9999px;font-size:.75rem}
.badge-default{background:var(--primary);color:#fff}.badge-secondary{background:var(--secondary)}.badge-destructive{background:var(--destructive);color:#fff}
.btn{display:inline-flex;align-items:center;gap:.5rem;padding:.5rem 1rem;border-radius:.375rem;border:1px solid transparent;cursor:pointer;text-decoration:none;color:inherit;background:none;font:inherit}
.btn-sm{padding:.25rem .75rem}.btn-block{width:100%}.btn-ghost:hover{background:var(--secondary)}
.btn-outline{border-color:var(--border)}.btn-primary{background:var(--primary);color:#fff}
.btn-success{background:var(--success);color:#fff}.btn-destructive{background:var(--destructive);color:#fff}
input,textarea{width:100%;padding:.5rem;border:1px solid var(--border);border-radius:.375rem;background:var(--card);color:var(--fg);font:inherit;resize:none}
table{width:100%;border-collapse:collapse}th,td{padding:.75rem 1rem;text-align:left;border-bottom:1px solid var(--border)}
.pagination{display:flex;justify-content:center;gap:.25rem;margin-top:1rem}
.page{padding:.25rem .75rem;border-radius:.375rem;text-decoration:none;color:inherit}.page.active{border:1px solid var(--border)}
.page.disabled{opacity:.5;pointer-events:none}.empty{text-align:center;padding:2rem;color:var(--muted)}
.alert{padding:1rem;margin:1rem 0;border:1px solid var(--destructive);border-radius:.375rem;color:var(--destructive)}
.dialog{position:relative}.dialog summary{list-style:none}.dialog[open] .dialog-body{position:fixed;inset:10%;background:var(--card);border:1px solid var(--border);border-radius:.5rem;padding:1.5rem;display:flex;flex-direction:column;align-items:center;z-index:10}
.dialog-body img{max-width:100%;max-height:70vh;object-fit:contain}
.toast{position:fixed;right:1rem;bottom:1rem;max-width:24rem;padding:1rem;background:var(--card);border:1px solid var(--border);border-radius:.5rem}
.toast p{margin:.25rem 0 0}.toast-destructive{background:var(--destructive);color:#fff}
.activity{list-style:none;margin:0;padding:0;display:flex;flex-direction:column;gap:.5rem}
.sr-only{position:absolute;width:1px;height:1px;overflow:hidden;clip:rect(0,0,0,0)}
`
