package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"

	"github.com/rogpeppe/notation"
)

type ConvertReq struct {
	Expression string `json:"expression" binding:"required"`
	// Notation names the notation of Expression;
	// infix when empty.
	Notation string `json:"notation"`
}

// ExpressionResp holds a single converted expression.
type ExpressionResp struct {
	Expression string `json:"expression"`
}

type ValueResp struct {
	Value int `json:"value"`
}

func (h *HttpEndpoints) convert(c *gin.Context) {
	var req ConvertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("convert: invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n := notation.Infix
	if req.Notation != "" {
		var err error
		if n, err = notation.ParseNotation(req.Notation); err != nil {
			slog.Debug("convert: bad notation", slog.String("notation", req.Notation))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	r, err := notation.Convert(req.Expression, n)
	if err != nil {
		engineError(c, "convert", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// evaluate serves GET /v1/evaluate?postfix=expr. As with the
// other GET routes, operators in expr must be percent-encoded:
// an unencoded "+" in a query string decodes as a space, which
// the engine skips.
func (h *HttpEndpoints) evaluate(c *gin.Context) {
	expr, ok := requireQuery(c, "postfix")
	if !ok {
		return
	}
	v, err := notation.EvalPostfix(expr)
	if err != nil {
		engineError(c, "evaluate", err)
		return
	}
	c.JSON(http.StatusOK, ValueResp{Value: v})
}

func (h *HttpEndpoints) toPostfix(c *gin.Context) {
	expr, ok := requireQuery(c, "infix")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ExpressionResp{Expression: notation.InfixToPostfix(expr)})
}

func (h *HttpEndpoints) toPrefix(c *gin.Context) {
	expr, ok := requireQuery(c, "infix")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ExpressionResp{Expression: notation.InfixToPrefix(expr)})
}

// toInfix converts from whichever of the postfix or
// prefix parameters is given.
func (h *HttpEndpoints) toInfix(c *gin.Context) {
	postfix, hasPostfix := c.GetQuery("postfix")
	prefix, hasPrefix := c.GetQuery("prefix")
	var infix string
	var err error
	switch {
	case hasPostfix && hasPrefix:
		c.JSON(http.StatusBadRequest, gin.H{"error": "postfix and prefix parameters both given"})
		return
	case hasPostfix:
		infix, err = notation.PostfixToInfix(postfix)
	case hasPrefix:
		infix, err = notation.PrefixToInfix(prefix)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing postfix or prefix parameter"})
		return
	}
	if err != nil {
		engineError(c, "infix", err)
		return
	}
	c.JSON(http.StatusOK, ExpressionResp{Expression: infix})
}

func requireQuery(c *gin.Context, name string) (string, bool) {
	v, ok := c.GetQuery(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + name + " parameter"})
	}
	return v, ok
}

// engineError responds to a failed evaluation or conversion.
func engineError(c *gin.Context, op string, err error) {
	status := http.StatusUnprocessableEntity
	if xerrors.Is(err, notation.ErrUnknownNotation) {
		status = http.StatusBadRequest
	}
	slog.Debug(op+": failed", slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
