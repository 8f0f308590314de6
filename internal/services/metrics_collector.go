package services

import (
	"log"
	"time"

	"lunchbox-backend/internal/metrics"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// MetricsCollector samples host CPU and memory into the Prometheus
// gauges every 30 seconds
type MetricsCollector struct {
	stopChan chan struct{}
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{stopChan: make(chan struct{})}
}

func (c *MetricsCollector) sample() {
	cpuPercents, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercents) > 0 {
		metrics.HostCPUPercent.Set(cpuPercents[0])
	}

	memStats, err := mem.VirtualMemory()
	if err == nil {
		metrics.HostMemoryPercent.Set(memStats.UsedPercent)
		metrics.HostMemoryUsedBytes.Set(float64(memStats.Used))
	}
}

// Start begins the sampling loop
func (c *MetricsCollector) Start() {
	go func() {
		c.sample()
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sample()
			case <-c.stopChan:
				return
			}
		}
	}()
	log.Println("[Metrics] Host collector started")
}

// Stop terminates the sampling loop
func (c *MetricsCollector) Stop() {
	close(c.stopChan)
}
