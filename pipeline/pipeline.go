// Package pipeline runs the ingestion worker (input source, downmix,
// resample, spectral transform) and publishes completed rows to a single
// consumer through a bounded FIFO channel.
package pipeline

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/spectralab/sgram/audio"
	"github.com/spectralab/sgram/dsp/spectral"
	"github.com/spectralab/sgram/logging"
)

const (
	// rowChannelCap bounds the row channel between worker and consumer.
	rowChannelCap = 64
	// readChunk is how many interleaved samples the worker pulls per read.
	readChunk = 4096
	// maxPaceSleep caps a single pacing sleep so a hiccup cannot stall the
	// worker for long.
	maxPaceSleep = 50 * time.Millisecond
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRealtime paces file playback to wall-clock time. It has no effect on
// capture input, which is paced by the device itself.
func WithRealtime(on bool) Option {
	return func(p *Pipeline) { p.realtime = on }
}

// WithLogger replaces the global logger for this pipeline.
func WithLogger(l logging.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// Pipeline owns the worker goroutine that turns an input source into
// spectral rows. The bounded row channel is the only state shared with the
// consumer; the configuration is captured by value at construction and
// never mutated.
type Pipeline struct {
	cfg      spectral.Config
	rows     chan spectral.Row
	done     chan struct{}
	wg       sync.WaitGroup
	log      logging.Logger
	realtime bool

	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates a pipeline for the given spectral configuration. The
// configuration is clamped exactly once, here.
func New(cfg spectral.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		rows: make(chan spectral.Row, rowChannelCap),
		done: make(chan struct{}),
		log:  logging.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Run the config through the engine constructor once so Config()
	// reports the same clamped values the worker will use.
	p.cfg = spectral.NewSpectrogram(cfg).Config()
	return p
}

// Config returns the active, clamped configuration so consumers can map
// bin index to frequency on their own.
func (p *Pipeline) Config() spectral.Config {
	return p.cfg
}

// Rows is the output channel. It is closed when the input ends, a fatal
// error stops the worker, or Stop is called; rows arrive in exactly the
// order the spectral transform produced them.
func (p *Pipeline) Rows() <-chan spectral.Row {
	return p.rows
}

// Run starts the worker on a file-style source. The worker owns src and
// closes it on exit. Run may be called once per pipeline.
func (p *Pipeline) Run(src audio.Source) {
	p.startOnce.Do(func() {
		p.wg.Add(1)
		go p.runSource(src)
	})
}

// RunCapture starts the worker on a live-capture queue whose blocks are
// already mono at sourceRate. Close the queue to end the stream.
func (p *Pipeline) RunCapture(q *audio.CaptureQueue, sourceRate int) {
	p.startOnce.Do(func() {
		p.wg.Add(1)
		go p.runCapture(q, sourceRate)
	})
}

// Stop signals the worker to exit; the worker observes the signal between
// chunks. Use Wait to join it.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// Wait blocks until the worker goroutine has exited.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

func (p *Pipeline) runSource(src audio.Source) {
	defer p.wg.Done()
	defer close(p.rows)
	defer src.Close()

	engine := spectral.NewSpectrogram(p.cfg)
	downmix := audio.NewDownmixer(src.Channels())
	resample := audio.NewResampler(src.SampleRate(), p.cfg.SampleRate)

	p.log.Debug("pipeline worker started", logging.Fields{
		"source_rate": src.SampleRate(),
		"channels":    src.Channels(),
		"target_rate": p.cfg.SampleRate,
		"realtime":    p.realtime,
	})

	buf := make([]float32, readChunk)
	start := time.Now()
	emitted := 0

	for {
		select {
		case <-p.done:
			return
		default:
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			out := resample.Process(downmix.Process(buf[:n]))
			emitted += len(out)

			if !p.send(engine.Process(out)) {
				return
			}
			if p.realtime {
				p.throttle(start, emitted)
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.log.Error(err, "input decode failed, stopping pipeline")
			}
			return
		}
	}
}

func (p *Pipeline) runCapture(q *audio.CaptureQueue, sourceRate int) {
	defer p.wg.Done()
	defer close(p.rows)

	engine := spectral.NewSpectrogram(p.cfg)
	resample := audio.NewResampler(sourceRate, p.cfg.SampleRate)
	passthrough := sourceRate == p.cfg.SampleRate

	p.log.Debug("capture worker started", logging.Fields{
		"source_rate": sourceRate,
		"target_rate": p.cfg.SampleRate,
	})

	for {
		select {
		case <-p.done:
			return
		default:
		}

		block, ok := q.Next()
		if !ok {
			return
		}

		mono := block
		if !passthrough {
			mono = resample.Process(block)
		}
		if !p.send(engine.Process(mono)) {
			return
		}
	}
}

// send delivers rows in order, blocking while the channel is full. A full
// channel only slows the worker down; for live capture, overload is
// absorbed earlier by the drop-on-full capture queue.
func (p *Pipeline) send(rows []spectral.Row) bool {
	for _, row := range rows {
		select {
		case p.rows <- row:
		case <-p.done:
			return false
		}
	}
	return true
}

// throttle sleeps until wall-clock time catches up with the stream
// position implied by the emitted sample count.
func (p *Pipeline) throttle(start time.Time, emitted int) {
	deadline := time.Duration(float64(emitted) / float64(p.cfg.SampleRate) * float64(time.Second))
	if ahead := deadline - time.Since(start); ahead > 0 {
		time.Sleep(min(ahead, maxPaceSleep))
	}
}
