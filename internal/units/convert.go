package units

import (
	"go.uber.org/zap"

	"github.com/msto63/sciops/pkg/core/cache"
)

// Converter converts values between unit expressions of one registry.
// It is safe for concurrent use.
type Converter struct {
	registry *Registry
	logger   *zap.Logger
	parsed   *cache.Cache[string, Expression]
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for debug tracing of conversions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCache memoizes up to size parsed expressions. Failed parses are not
// cached.
func WithCache(size int) Option {
	return func(c *Converter) {
		c.parsed = cache.New[string, Expression](cache.Config{MaxItems: size})
	}
}

// NewConverter creates a converter over reg.
func NewConverter(reg *Registry, opts ...Option) *Converter {
	c := &Converter{
		registry: reg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("units")
	return c
}

// Registry returns the registry the converter resolves symbols against.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// Request is a single conversion.
type Request struct {
	Value float64
	From  string
	To    string
}

// Result is the outcome of a conversion. Affine is true when the offset
// transform was applied instead of plain scaling.
type Result struct {
	Request  Request
	Value    float64
	FromExpr Expression
	ToExpr   Expression
	Affine   bool
}

// Convert converts value from one unit expression to another.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	res, err := c.Do(Request{Value: value, From: from, To: to})
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Do parses both sides of req and converts its value. It fails with
// *UnknownUnitError, *MalformedExpressionError, *DimensionMismatchError or
// *AffineCompositionError.
func (c *Converter) Do(req Request) (Result, error) {
	from, err := c.parse(req.From)
	if err != nil {
		return Result{}, err
	}
	to, err := c.parse(req.To)
	if err != nil {
		return Result{}, err
	}

	value, affine, err := c.ConvertExpr(req.Value, from, to)
	if err != nil {
		return Result{}, err
	}

	c.logger.Debug("converted",
		zap.Float64("value", req.Value),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Float64("result", value),
		zap.Bool("affine", affine))

	return Result{Request: req, Value: value, FromExpr: from, ToExpr: to, Affine: affine}, nil
}

// ConvertExpr converts between already parsed expressions. The returned
// flag reports whether the offset transform was used.
func (c *Converter) ConvertExpr(value float64, from, to Expression) (float64, bool, error) {
	if !from.Dimension().Equal(to.Dimension()) {
		return 0, false, &DimensionMismatchError{
			From:    from.Raw(),
			To:      to.Raw(),
			FromDim: from.Dimension(),
			ToDim:   to.Dimension(),
		}
	}

	src, srcSingle := from.Single()
	dst, dstSingle := to.Single()
	if srcSingle && dstSingle && src.Affine && dst.Affine {
		return dst.FromBase(src.ToBase(value)), true, nil
	}

	for _, e := range []Expression{from, to} {
		if u, ok := e.offsetUnit(); ok {
			return 0, false, &AffineCompositionError{Expression: e.Raw(), Symbol: u.Symbol}
		}
	}

	return value * (from.Scale() / to.Scale()), false, nil
}

func (c *Converter) parse(expr string) (Expression, error) {
	if c.parsed == nil {
		return c.registry.Parse(expr)
	}
	return c.parsed.GetOrSet(expr, func() (Expression, error) {
		return c.registry.Parse(expr)
	})
}
