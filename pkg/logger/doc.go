// Package logger builds log/slog loggers and provides attribute helpers with
// consistent keys.
//
//	log := logger.New(
//	    logger.WithLevelName("debug"),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "formcheck")),
//	)
//	log.Debug("submission resolved", logger.Component("conform"), logger.Fields(2))
//
// Attribute helpers return an empty slog.Attr for absent values, which slog
// drops from the output.
package logger
