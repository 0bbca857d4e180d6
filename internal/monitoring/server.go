package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"vente-backend/internal/events"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Server is the ops sidecar: a separate listener exposing process and
// database stats plus a websocket feed of live payment activity. It
// never shares a port with the business API.
type Server struct {
	db         *pgxpool.Pool
	port       int
	activity   []Activity
	actMux     sync.RWMutex
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Activity
}

// Activity is one live feed entry pushed to connected dashboards.
type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Amount    float64   `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is the point-in-time snapshot served at /api/stats.
type Stats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	DBSize            string  `json:"db_size"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskUsed          string  `json:"disk_used"`
	DiskTotal         string  `json:"disk_total"`
	Orders            int     `json:"orders"`
	Invoices          int     `json:"invoices"`
	PaymentsToday     int     `json:"payments_today"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewServer(db *pgxpool.Pool, port int, bus *events.Bus) *Server {
	s := &Server{
		db:        db,
		port:      port,
		activity:  make([]Activity, 0),
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Activity),
	}

	bus.SubscribePaymentRecorded(func(ev events.PaymentRecorded) {
		s.Record(Activity{
			Type:      "payment",
			Message:   fmt.Sprintf("payment recorded on order %d", ev.OrderID),
			Amount:    ev.Amount,
			Timestamp: ev.RecordedAt,
		})
	})

	return s
}

func (s *Server) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/api/stats", s.getStats).Methods("GET")
	r.HandleFunc("/api/activity", s.getActivity).Methods("GET")
	r.HandleFunc("/ws", s.handleWebSocket)

	go s.handleBroadcast()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Monitoring server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

// Record appends a feed entry and pushes it to websocket clients. The
// in-memory log keeps the last 100 entries.
func (s *Server) Record(a Activity) {
	s.actMux.Lock()
	s.activity = append(s.activity, a)
	if len(s.activity) > 100 {
		s.activity = s.activity[len(s.activity)-100:]
	}
	s.actMux.Unlock()

	select {
	case s.broadcast <- a:
	default:
	}
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats := s.collectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	s.actMux.RLock()
	defer s.actMux.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.activity)
}

func (s *Server) collectStats() Stats {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	dbStatus := "healthy"
	if err != nil {
		dbStatus = "unhealthy"
	}

	var activeConns int
	s.db.QueryRow(ctx, "SELECT count(*) FROM pg_stat_activity").Scan(&activeConns)

	var dbSizeBytes int64
	s.db.QueryRow(ctx, "SELECT pg_database_size(current_database())").Scan(&dbSizeBytes)
	dbSize := fmt.Sprintf("%.2f MB", float64(dbSizeBytes)/(1024*1024))

	var orders, invoices, paymentsToday int
	s.db.QueryRow(ctx, "SELECT count(*) FROM orders").Scan(&orders)
	s.db.QueryRow(ctx, "SELECT count(*) FROM invoices").Scan(&invoices)
	s.db.QueryRow(ctx, "SELECT count(*) FROM payments WHERE payment_date::date = CURRENT_DATE").Scan(&paymentsToday)

	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	stats := Stats{
		DatabaseStatus:    dbStatus,
		ActiveConnections: activeConns,
		ResponseTime:      responseTime,
		DBSize:            dbSize,
		CPUPercent:        cpuPercent,
		Orders:            orders,
		Invoices:          invoices,
		PaymentsToday:     paymentsToday,
	}
	if memStats != nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}
	if diskStats != nil {
		stats.DiskPercent = diskStats.UsedPercent
		stats.DiskUsed = formatBytes(diskStats.Used)
		stats.DiskTotal = formatBytes(diskStats.Total)
	}
	return stats
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	s.clientsMux.Lock()
	s.clients[conn] = true
	s.clientsMux.Unlock()

	// Reader loop only exists to detect disconnects
	go func() {
		defer func() {
			s.clientsMux.Lock()
			delete(s.clients, conn)
			s.clientsMux.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) handleBroadcast() {
	for a := range s.broadcast {
		s.clientsMux.Lock()
		for conn := range s.clients {
			if err := conn.WriteJSON(a); err != nil {
				conn.Close()
				delete(s.clients, conn)
			}
		}
		s.clientsMux.Unlock()
	}
}

func formatBytes(b uint64) string {
	const gb = 1024 * 1024 * 1024
	const mb = 1024 * 1024
	if b >= gb {
		return fmt.Sprintf("%.1f GB", float64(b)/gb)
	}
	return fmt.Sprintf("%.0f MB", float64(b)/mb)
}
