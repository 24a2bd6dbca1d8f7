package server

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"rook-game/internal/bot"
	"rook-game/internal/config"
	"rook-game/internal/database"
	"rook-game/internal/game"
	"rook-game/internal/protocol"
	"rook-game/internal/shared"

	"go.uber.org/zap"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

type registration struct {
	client *Client
	room   string
}

// botTurn asks the hub loop to let a bot act. It is dropped if the table
// moved on since it was scheduled.
type botTurn struct {
	room    string
	seat    int
	phase   game.Phase
	version uint64
}

// ResultArchiver stores finished matches.
type ResultArchiver interface {
	Insert(ctx context.Context, result database.MatchResult) error
}

const roomCodeLength = 5

// Options configures a Hub.
type Options struct {
	Rules             shared.Ruleset
	BotDelay          config.BotDelayConfig
	DefaultDifficulty bot.Difficulty
	ArchiveTimeout    time.Duration
	Archiver          ResultArchiver // nil disables archiving
	Logger            *zap.Logger
	Seed              uint64 // 0 picks a random seed
}

// Hub owns every room and connection. All room and game state is touched
// only from the Run goroutine; everything else talks to it over channels.
type Hub struct {
	rooms   map[string]*Room
	clients map[*Client]bool

	register       chan registration
	unregister     chan *Client
	processMessage chan clientMessage
	botTurns       chan botTurn
	calls          chan func()
	done           chan struct{}
	archives       sync.WaitGroup

	rules      shared.Ruleset
	delays     config.BotDelayConfig
	difficulty bot.Difficulty
	archiveTTL time.Duration
	archiver   ResultArchiver
	rng        *rand.Rand
	logger     *zap.Logger
}

// NewHub creates a new Hub instance.
func NewHub(opts Options) *Hub {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	ttl := opts.ArchiveTimeout
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	rules := opts.Rules
	if rules == (shared.Ruleset{}) {
		rules = shared.RobinsonRules()
	}

	return &Hub{
		rooms:          make(map[string]*Room),
		clients:        make(map[*Client]bool),
		register:       make(chan registration),
		unregister:     make(chan *Client),
		processMessage: make(chan clientMessage),
		botTurns:       make(chan botTurn),
		calls:          make(chan func()),
		done:           make(chan struct{}),
		rules:          rules,
		delays:         opts.BotDelay,
		difficulty:     opts.DefaultDifficulty.OrDefault(),
		archiveTTL:     ttl,
		archiver:       opts.Archiver,
		rng:            rand.New(rand.NewPCG(seed, seed>>1|1)),
		logger:         logger,
	}
}

// Run starts the Hub's main loop and returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			close(c.send)
		}
		h.clients = map[*Client]bool{}
		h.rooms = map[string]*Room{}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("hub stopping", zap.Int("rooms", len(h.rooms)))
			return
		case reg := <-h.register:
			h.handleRegister(reg)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case cm := <-h.processMessage:
			h.handleMessage(cm.client, cm.message)
		case bt := <-h.botTurns:
			h.handleBotTurn(bt)
		case fn := <-h.calls:
			fn()
		}
	}
}

// Wait blocks until in-flight archive writes have finished.
func (h *Hub) Wait() {
	h.archives.Wait()
}

func (h *Hub) registerClient(c *Client, room string) bool {
	select {
	case h.register <- registration{client: c, room: room}:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) deliver(cm clientMessage) bool {
	select {
	case h.processMessage <- cm:
		return true
	case <-h.done:
		return false
	}
}

// do runs fn on the hub goroutine and waits for it. fn may still run after
// do gave up on ctx, so it must only hand results back over buffered
// channels.
func (h *Hub) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	call := func() {
		defer close(finished)
		fn()
	}
	select {
	case h.calls <- call:
	case <-h.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RoomCount reports the number of open rooms.
func (h *Hub) RoomCount(ctx context.Context) (int, error) {
	count := make(chan int, 1)
	if err := h.do(ctx, func() { count <- len(h.rooms) }); err != nil {
		return 0, err
	}
	return <-count, nil
}

// generateRoomCode creates a unique alphanumeric room code.
func (h *Hub) generateRoomCode() string {
	const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	for {
		var sb strings.Builder
		for i := 0; i < roomCodeLength; i++ {
			sb.WriteByte(letters[h.rng.IntN(len(letters))])
		}
		code := sb.String()
		if _, exists := h.rooms[code]; !exists {
			return code
		}
		h.logger.Debug("room code collided", zap.String("room", code))
	}
}

func (h *Hub) childRand() *rand.Rand {
	return rand.New(rand.NewPCG(h.rng.Uint64(), h.rng.Uint64()))
}

func (h *Hub) newBrain(d bot.Difficulty) bot.Brain {
	b, err := bot.NewBrain(d.OrDefault(), h.childRand())
	if err != nil {
		h.logger.Error("create bot", zap.String("difficulty", string(d)), zap.Error(err))
		b, _ = bot.NewBrain(bot.Medium, h.childRand())
	}
	return b
}

func (h *Hub) handleRegister(reg registration) {
	c := reg.client
	code := reg.room
	if code == "" {
		code = h.generateRoomCode()
	}
	room, ok := h.rooms[code]
	if !ok {
		room = newRoom(code)
		h.rooms[code] = room
		h.logger.Info("room created", zap.String("room", code))
	}

	i := room.firstFreeSeat()
	if i < 0 {
		h.logger.Info("room full", zap.String("room", code), zap.String("client", c.ID))
		h.sendError(c, "Room is full.")
		close(c.send)
		return
	}

	h.clients[c] = true
	room.seatHuman(i, c)
	h.logger.Info("client seated", zap.String("room", code), zap.String("client", c.ID), zap.Int("seat", i))

	h.send(c, protocol.TypeWelcome, protocol.WelcomePayload{Room: code, Seat: i, ClientID: c.ID})
	h.broadcastRoom(room)
}

// detach forgets a connection and closes its send channel. Safe to call twice.
func (h *Hub) detach(c *Client) bool {
	if !h.clients[c] {
		return false
	}
	delete(h.clients, c)
	close(c.send)
	return true
}

func (h *Hub) handleUnregister(c *Client) {
	if !h.detach(c) {
		return
	}
	room := h.rooms[c.room]
	if room == nil || c.seat < 0 || room.seats[c.seat].client != c {
		return
	}

	if room.started() {
		room.seatBot(c.seat, h.newBrain(bot.Medium))
		h.logger.Info("human replaced by bot", zap.String("room", room.Code), zap.Int("seat", c.seat))
	} else {
		room.seats[c.seat] = seat{}
		h.logger.Info("client left lobby", zap.String("room", room.Code), zap.Int("seat", c.seat))
	}

	if room.humanCount() == 0 {
		delete(h.rooms, room.Code)
		h.logger.Info("room closed", zap.String("room", room.Code))
		return
	}
	h.broadcastRoom(room)
	if room.started() {
		h.scheduleBot(room)
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(c *Client, msg protocol.Message) {
	if !h.clients[c] {
		return
	}
	room := h.rooms[c.room]
	if room == nil {
		return
	}

	switch msg.Type {
	case "ping":
		h.send(c, "pong", nil)
	case protocol.TypeSetName:
		var p protocol.SetNamePayload
		if err := protocol.DecodePayload(msg, &p); err != nil {
			h.sendError(c, "Invalid SET_NAME message format.")
			return
		}
		room.setName(c.seat, p.Name)
		h.broadcastRoom(room)
	case protocol.TypeAddBot, protocol.TypeAddBotAtSeat, protocol.TypeReplaceWithBot:
		h.handleBotRequest(room, c, msg)
	case protocol.TypeStartGame:
		if !room.canStart() {
			h.broadcastRoom(room)
			return
		}
		h.startGame(room, c.seat)
	default:
		if protocol.IsAction(msg.Type) {
			h.handleAction(room, c, msg)
			return
		}
		h.logger.Debug("unknown message type", zap.String("type", msg.Type), zap.String("client", c.ID))
		h.sendError(c, "Unknown message type.")
	}
}

func (h *Hub) handleBotRequest(room *Room, c *Client, msg protocol.Message) {
	if room.started() {
		h.sendError(c, "Seats are fixed once the game has started.")
		return
	}
	var p protocol.BotPayload
	if err := protocol.DecodePayload(msg, &p); err != nil {
		h.sendError(c, "Invalid bot request.")
		return
	}
	difficulty := h.difficulty
	if p.Difficulty != "" {
		difficulty = bot.Difficulty(strings.ToLower(p.Difficulty)).OrDefault()
	}

	target := -1
	switch msg.Type {
	case protocol.TypeAddBot:
		target = room.firstFreeSeat()
		if target < 0 {
			h.sendError(c, "Room is full.")
			return
		}
	default:
		if p.Seat == nil || *p.Seat < 0 || *p.Seat >= shared.NumSeats {
			h.sendError(c, "Invalid seat.")
			return
		}
		target = *p.Seat
		occupied := room.seats[target].occupied()
		if msg.Type == protocol.TypeAddBotAtSeat && occupied {
			h.sendError(c, "Seat is taken.")
			return
		}
		if msg.Type == protocol.TypeReplaceWithBot && !occupied {
			h.sendError(c, "Seat is empty.")
			return
		}
	}

	if replaced := room.seats[target].client; replaced != nil {
		h.sendError(replaced, "Replaced by bot.")
		h.detach(replaced)
		replaced.room = ""
		replaced.seat = -1
	}
	room.seatBot(target, h.newBrain(difficulty))
	h.logger.Info("bot seated",
		zap.String("room", room.Code),
		zap.Int("seat", target),
		zap.String("difficulty", string(difficulty)))

	if room.humanCount() == 0 {
		delete(h.rooms, room.Code)
		h.logger.Info("room closed", zap.String("room", room.Code))
		return
	}
	h.broadcastRoom(room)
}

func (h *Hub) startGame(room *Room, host int) {
	g, err := game.NewGame(h.rules,
		game.WithLogger(h.logger.With(zap.String("room", room.Code))),
		game.WithRand(h.childRand()),
		game.WithHost(host))
	if err != nil {
		// Rules were validated when the config loaded.
		h.logger.Error("start game", zap.String("room", room.Code), zap.Error(err))
		return
	}
	room.game = g
	h.logger.Info("game started", zap.String("room", room.Code), zap.String("game_id", g.ID))
	h.afterChange(room)
}

func (h *Hub) handleAction(room *Room, c *Client, msg protocol.Message) {
	if !room.started() {
		h.sendError(c, "Game has not started.")
		return
	}
	a, err := protocol.DecodeAction(msg)
	if err != nil {
		h.sendError(c, "Invalid "+msg.Type+" message format.")
		return
	}
	res := room.game.Dispatch(c.seat, a)
	if res.Notice != "" {
		h.send(c, protocol.TypeNotify, protocol.NotifyPayload{Message: res.Notice})
	}
	if res.Changed {
		h.afterChange(room)
	}
}

// afterChange pushes the new state out, archives a finished match and lets
// the next bot know it is up.
func (h *Hub) afterChange(room *Room) {
	h.broadcastRoom(room)
	h.maybeArchive(room)
	h.scheduleBot(room)
}

func (h *Hub) botDelay(g *game.Game, seat int) time.Duration {
	switch g.Phase() {
	case game.PhaseBidding:
		return h.delays.Bid
	case game.PhaseReveal:
		return h.delays.Continue
	case game.PhaseDiscard:
		return h.delays.Discard
	case game.PhaseTrump:
		return h.delays.Trump
	case game.PhasePlay:
		if g.ViewFor(seat).MustCallColor {
			return h.delays.CallColor
		}
		return h.delays.Play
	}
	return 0
}

func (h *Hub) scheduleBot(room *Room) {
	g := room.game
	if g == nil {
		return
	}
	seat, ok := g.SeatToAct()
	if !ok || !room.isBot(seat) {
		return
	}
	bt := botTurn{room: room.Code, seat: seat, phase: g.Phase(), version: g.Version()}
	time.AfterFunc(h.botDelay(g, seat), func() {
		select {
		case h.botTurns <- bt:
		case <-h.done:
		}
	})
}

func (h *Hub) handleBotTurn(bt botTurn) {
	room := h.rooms[bt.room]
	if room == nil || room.game == nil || !room.isBot(bt.seat) {
		return
	}
	g := room.game
	if g.Version() != bt.version || g.Phase() != bt.phase {
		return
	}
	if seat, ok := g.SeatToAct(); !ok || seat != bt.seat {
		return
	}

	view := g.ViewFor(bt.seat)
	a, ok := room.seats[bt.seat].brain.Decide(view)
	if ok && !g.Dispatch(bt.seat, a).Rejected() {
		h.afterChange(room)
		return
	}
	h.logger.Warn("bot move refused, falling back",
		zap.String("room", room.Code),
		zap.Int("seat", bt.seat),
		zap.String("action", string(a.Kind)))

	fb, ok := bot.Fallback(view)
	if !ok {
		h.logger.Error("bot has no legal move", zap.String("room", room.Code), zap.Int("seat", bt.seat))
		return
	}
	if res := g.Dispatch(bt.seat, fb); res.Rejected() {
		h.logger.Error("bot fallback rejected",
			zap.String("room", room.Code),
			zap.Int("seat", bt.seat),
			zap.String("action", string(fb.Kind)),
			zap.Error(res.Reason))
		return
	}
	h.afterChange(room)
}

func (h *Hub) broadcastRoom(room *Room) {
	seats := room.seatInfos()
	if !room.started() {
		payload := protocol.LobbyUpdatePayload{Room: room.Code, Seats: seats, CanStart: room.canStart()}
		for i := range room.seats {
			if c := room.seats[i].client; c != nil {
				h.send(c, protocol.TypeLobby, payload)
			}
		}
		return
	}
	for i := range room.seats {
		if c := room.seats[i].client; c != nil {
			h.send(c, protocol.TypeGameState, protocol.GameStatePayload{
				Room:  room.Code,
				Seats: seats,
				View:  room.game.ViewFor(i),
			})
		}
	}
}

func (h *Hub) send(c *Client, msgType string, payload interface{}) {
	data, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		h.logger.Error("encode message", zap.String("type", msgType), zap.Error(err))
		return
	}
	h.sendMessageToClient(c, data)
}

func (h *Hub) sendError(c *Client, message string) {
	h.send(c, protocol.TypeError, protocol.ErrorPayload{Message: message})
}

// sendMessageToClient never blocks the hub; a client that cannot keep up
// loses the message.
func (h *Hub) sendMessageToClient(c *Client, data []byte) {
	select {
	case c.send <- data:
	default:
		h.logger.Warn("client send buffer full, dropping message", zap.String("client", c.ID))
	}
}
