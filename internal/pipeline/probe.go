package pipeline

import (
	"context"
	"time"

	"github.com/adace74/distribulator2-contrib/internal/log"
	"github.com/adace74/distribulator2-contrib/internal/probe"
	"github.com/adace74/distribulator2-contrib/pkg/model"
	"go.uber.org/zap"
)

// Probe runs one connect attempt and, in banner mode, one banner check on
// the same connection. Every path resolves to exactly one outcome and the
// connection is closed before the result is returned.
func Probe(ctx context.Context, req model.Request) (res model.Result) {
	start := time.Now()
	res = model.Result{
		Target: model.Target{Host: req.Host, Port: req.Port},
		Phase:  model.PhaseConnect,
	}
	defer func() {
		res.ExitCode = res.Outcome.ExitCode()
		res.Elapsed = time.Since(start)
		log.Debug("probe finished",
			zap.String("host", req.Host),
			zap.Int("port", req.Port),
			zap.Stringer("outcome", res.Outcome),
			zap.Int("exit_code", res.ExitCode),
			zap.Duration("elapsed", res.Elapsed),
		)
	}()

	log.Debug("connecting", zap.String("host", req.Host), zap.Int("port", req.Port), zap.Duration("timeout", req.Timeout))
	conn, err := probe.Connect(ctx, req.Host, req.Port, req.Timeout)
	res.ConnectLatency = time.Since(start)
	if err != nil {
		res.Outcome, res.Diagnostic = probe.Classify(err)
		log.Debug("connect failed", zap.Error(err))
		return res
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Debug("close failed", zap.Error(cerr))
		}
	}()
	res.Target.Resolved = conn.RemoteAddr().String()
	log.Debug("connected", zap.String("remote", res.Target.Resolved), zap.Duration("elapsed", res.ConnectLatency))

	if !req.BannerMode {
		res.Outcome = model.Success
		return res
	}

	res.Phase = model.PhaseBanner
	data, err := probe.VerifyBanner(conn, req.BannerMatch, req.Timeout)
	res.BannerChecked = probe.BannerReceived(err)
	res.BannerBytes = len(data)
	res.Banner = string(data)
	res.Outcome, res.Diagnostic = probe.Classify(err)
	log.Debug("banner read", zap.Int("bytes", res.BannerBytes), zap.Stringer("outcome", res.Outcome))
	return res
}
