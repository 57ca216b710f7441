package live

// ClientScript keeps the page body in sync with the server and posts clicks on
// elements carrying a data-action attribute.
const ClientScript = `(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_live');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            if (msg.type === 'render') {
                document.body.innerHTML = msg.html;
            } else if (msg.type === 'error') {
                console.error('[flux]', msg.error);
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    document.addEventListener('click', function(e) {
        var el = e.target.closest('[data-action]');
        if (!el) {
            return;
        }
        e.preventDefault();
        fetch('/actions/' + encodeURIComponent(el.dataset.action), {
            method: 'POST',
            headers: {'Content-Type': 'application/json'},
            body: el.dataset.payload || '{}'
        });
    });

    connect();
})();`
