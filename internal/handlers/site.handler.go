package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// workerVersion busts the offline cache; bump it whenever WorkerScript changes.
const workerVersion = "v2"

// WorkerScript is the service worker served at /sw.js. Admin pages go
// network-first so operators always see fresh data, with the last cached copy
// answering offline; static assets are immutable within a cache version and
// go cache-first. Requests outside /admin/ and /static/ are left alone.
const WorkerScript = `var CACHE = 'hftecno-admin-` + workerVersion + `';

self.addEventListener('install', function (event) {
  event.waitUntil(
    caches.open(CACHE).then(function (cache) {
      return cache.addAll(['/admin/']);
    }).then(function () {
      return self.skipWaiting();
    })
  );
});

self.addEventListener('activate', function (event) {
  event.waitUntil(
    caches.keys().then(function (keys) {
      return Promise.all(keys.filter(function (key) {
        return key !== CACHE;
      }).map(function (key) {
        return caches.delete(key);
      }));
    }).then(function () {
      return self.clients.claim();
    })
  );
});

function refreshCache(request, response) {
  if (response && response.status === 200) {
    var copy = response.clone();
    caches.open(CACHE).then(function (cache) {
      cache.put(request, copy);
    });
  }
  return response;
}

self.addEventListener('fetch', function (event) {
  if (event.request.method !== 'GET') {
    return;
  }
  var path = new URL(event.request.url).pathname;
  if (path.indexOf('/static/') === 0) {
    event.respondWith(
      caches.match(event.request).then(function (cached) {
        return cached || fetch(event.request).then(function (response) {
          return refreshCache(event.request, response);
        });
      })
    );
    return;
  }
  if (path.indexOf('/admin/') === 0) {
    event.respondWith(
      fetch(event.request).then(function (response) {
        return refreshCache(event.request, response);
      }).catch(function () {
        return caches.match(event.request);
      })
    );
  }
});
`

type SiteHandler struct {
	adminBasePath string
}

func NewSiteHandler(adminBasePath string) *SiteHandler {
	return &SiteHandler{adminBasePath: adminBasePath}
}

// RegisterSiteRoutes mounts the top-level routes: the root redirect into the
// admin, the offline service worker, and the liveness probe.
func RegisterSiteRoutes(e *gin.Engine, h *SiteHandler) {
	e.GET("/", h.Root)
	e.GET("/sw.js", h.Worker)
	e.GET("/healthz", h.Health)
}

func (h *SiteHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, h.adminBasePath)
}

func (h *SiteHandler) Worker(c *gin.Context) {
	// Served from application scope so the worker can control "/".
	c.Header("Service-Worker-Allowed", "/")
	c.Data(http.StatusOK, "application/javascript", []byte(WorkerScript))
}

func (h *SiteHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "success")
}
