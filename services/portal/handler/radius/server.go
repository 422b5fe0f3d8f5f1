// Package radius answers MAC-authentication Access-Requests for SSIDs whose
// auth mode is radius.
package radius

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/metrics"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/piresc/guestportal/services/portal"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
)

const defaultAddr = ":1812"

// Server is a RADIUS packet server backed by the portal session store
type Server struct {
	portalUC portal.PortalUC
	metrics  *metrics.Metrics
	server   *radius.PacketServer
}

// NewServer creates a RADIUS server for cfg
func NewServer(cfg models.RadiusConfig, portalUC portal.PortalUC, m *metrics.Metrics) *Server {
	s := &Server{
		portalUC: portalUC,
		metrics:  m,
	}
	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}
	s.server = &radius.PacketServer{
		Addr:         addr,
		Handler:      radius.HandlerFunc(s.ServeRADIUS),
		SecretSource: radius.StaticSecretSource([]byte(cfg.Secret)),
	}
	return s
}

// Start listens in the background until Shutdown
func (s *Server) Start() {
	go func() {
		logger.Info("Starting RADIUS server", logger.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, radius.ErrServerShutdown) {
			logger.Error("RADIUS server stopped", logger.Err(err))
		}
	}()
}

// Serve answers requests on an existing connection
func (s *Server) Serve(conn net.PacketConn) error {
	return s.server.Serve(conn)
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeRADIUS accepts the device only when it holds a live session on a
// radius-mode SSID of the tenant whose controller sent NAS-Identifier
func (s *Server) ServeRADIUS(w radius.ResponseWriter, r *radius.Request) {
	code := radius.CodeAccessReject
	defer func() {
		if err := w.Write(r.Response(code)); err != nil {
			logger.Warn("Failed to write RADIUS response", logger.Err(err))
		}
	}()

	nasPortType := rfc2865.NASPortType_Get(r.Packet)
	if nasPortType != rfc2865.NASPortType_Value_Wireless80211 && nasPortType != rfc2865.NASPortType_Value_WirelessOther {
		s.metrics.RadiusRequest("invalid")
		logger.Warn("RADIUS request rejected: NAS-Port-Type must be wireless")
		return
	}

	mac, err := utils.NormalizeMAC(rfc2865.UserName_GetString(r.Packet))
	if err != nil {
		s.metrics.RadiusRequest("invalid")
		logger.Warn("RADIUS request rejected: User-Name is not a MAC address")
		return
	}
	ssid := ssidFromCalledStation(rfc2865.CalledStationID_GetString(r.Packet))
	nasID := rfc2865.NASIdentifier_GetString(r.Packet)
	if nasID == "" {
		s.metrics.RadiusRequest("invalid")
		logger.Warn("RADIUS request rejected: NAS-Identifier is required")
		return
	}

	ok, err := s.portalUC.AuthorizeRADIUS(r.Context(), nasID, mac, ssid)
	if err != nil {
		s.metrics.RadiusRequest("error")
		logger.Error("RADIUS session lookup failed",
			logger.String("nas_id", nasID),
			logger.String("ssid", ssid),
			logger.Err(err))
		return
	}
	if ok {
		code = radius.CodeAccessAccept
		s.metrics.RadiusRequest("accept")
	} else {
		s.metrics.RadiusRequest("reject")
	}
	logger.Info("RADIUS request answered",
		logger.String("mac", utils.MaskMAC(mac)),
		logger.String("nas_id", nasID),
		logger.String("ssid", ssid),
		logger.String("code", code.String()))
}

// ssidFromCalledStation returns the part after the last colon of a
// Called-Station-Id such as "AA-BB-CC-DD-EE-FF:Guest"
func ssidFromCalledStation(id string) string {
	if i := strings.LastIndex(id, ":"); i >= 0 {
		return id[i+1:]
	}
	return id
}
